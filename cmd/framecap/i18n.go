// Package main provides localization for the framecap CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Korean translations for CLI messages.
	l10n.Register("ko", l10n.LexiconMap{
		// Root command
		"Export a single video frame as a PNG image.": "동영상의 한 프레임을 PNG 이미지로 저장합니다.",
		"Show context-sensitive help.":                "도움말을 표시합니다.",

		// Global flags
		"Path to the YAML configuration file.":                                    "YAML 설정 파일 경로.",
		"Log level (debug, info, warn, error). Overrides the configuration file.": "로그 레벨 (debug, info, warn, error). 설정 파일보다 우선합니다.",
		"Log format (text or json). Overrides the configuration file.":            "로그 형식 (text 또는 json). 설정 파일보다 우선합니다.",
		"Suppress all log output.":                                                "모든 로그 출력을 숨깁니다.",

		// Commands
		"Export one video frame as a PNG image.":      "동영상 프레임 하나를 PNG 이미지로 저장합니다.",
		"Check whether a newer version is available.": "새 버전이 있는지 확인합니다.",
		"List the resolution presets.":                "해상도 프리셋 목록을 표시합니다.",
		"Show version information.":                   "버전 정보를 표시합니다.",
		"Open the developer contact page.":            "개발자 문의 페이지를 엽니다.",

		// Export flags
		"Video file (mp4, avi, mov, mkv).":         "동영상 파일 (mp4, avi, mov, mkv).",
		"Time of the frame in seconds, e.g. 4.15.": "캡처할 시간대(초), 예: 4.15.",
		"Skip the update check after exporting.":   "저장 후 업데이트 확인을 건너뜁니다.",

		"Output file. The name is sanitized and always ends in .png (default: frame.png in the output directory).": "저장할 파일. 이름은 안전한 문자로 바뀌며 항상 .png 로 끝납니다 (기본값: 출력 폴더의 frame.png).",
		"Resolution preset (SD, HD, FHD, QHD, 4K, 8K, Original). Overrides the configuration file.":                "해상도 프리셋 (SD, HD, FHD, QHD, 4K, 8K, Original). 설정 파일보다 우선합니다.",

		// Runtime messages
		"Capture failed":                  "캡처에 실패했습니다",
		"Failed to load configuration %s": "설정 파일 %s 을(를) 불러오지 못했습니다",
		"Unknown log format":              "알 수 없는 로그 형식",
		"Resolution presets":              "해상도 프리셋",
		"source resolution":               "원본 해상도",
		"Contact":                         "문의",
		"Contact the developer":           "개발자에게 문의하기",
		"framecap version %s":             "현재 버전: %s",
	})
}
