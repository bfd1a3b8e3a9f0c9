package consoleprompt

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ko", l10n.LexiconMap{
		"Not running in a terminal, answering no.": "터미널이 아니므로 '아니오'로 응답합니다.",
		"Could not open a browser: %v":             "브라우저를 열지 못했습니다: %v",
		"Open this link: %s":                       "다음 링크를 여세요: %s",
	})
}
