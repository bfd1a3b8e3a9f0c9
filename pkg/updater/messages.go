package updater

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ko", l10n.LexiconMap{
		"Update check":                              "업데이트 확인",
		"Update checking is not available.":         "업데이트 확인을 사용할 수 없습니다.",
		"Failed to check for updates: %s":           "업데이트 확인에 실패했습니다: %s",
		"You are running the latest version. (v%s)": "최신 버전입니다! (v%s)",

		"A new version is available! (current: v%s, latest: v%s)\nOpen the release page?": "새 버전이 있습니다! (현재: v%s, 최신: v%s)\n업데이트 페이지를 여시겠습니까?",
	})
}
