package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ko", l10n.LexiconMap{
		// Export (info)
		"Frame %d saved to %s (%dx%d)":  "%d번 프레임을 %s 에 저장했습니다 (%dx%d)",
		"Interrupted, shutting down...": "중단되었습니다. 종료하는 중...",

		// Extractor (debug)
		"Decoded frame %d":                              "%d번 프레임 디코딩 완료",
		"Resized to %dx%d (%s)":                         "%dx%d 로 크기 조정 (%s)",
		"Opened %s: %.3f fps, %d frames, %dx%d":         "%s 열림: %.3f fps, %d 프레임, %dx%d",
		"Frame %g is past the end, using last frame %d": "%g번 프레임이 범위를 벗어나 마지막 프레임 %d 을(를) 사용합니다",

		// ffmpeg (debug)
		"Decoding frame %d of %s":                                          "%d번 프레임 디코딩 중 (%s)",
		"Probed %s: codec %s, %.3f fps, %d frames, %dx%d":                  "%s 분석: 코덱 %s, %.3f fps, %d 프레임, %dx%d",
		"In-process probe of %s unavailable (%v), falling back to ffprobe": "%s 내장 분석 불가 (%v), ffprobe 로 전환합니다",

		// Exporter
		"Destination %s rewritten to %s": "저장 경로 %s 을(를) %s 로 변경했습니다",

		// Updater
		"Silent update check failed: %v": "자동 업데이트 확인 실패: %v",
		"Running the latest version v%s": "최신 버전 v%s 을(를) 사용 중입니다",
		"Failed to open %s: %v":          "%s 을(를) 열지 못했습니다: %v",

		// Warnings
		"%s does not have a common video extension, trying anyway": "%s 은(는) 일반적인 동영상 확장자가 아니지만 시도합니다",
	})
}
