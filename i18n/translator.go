package i18n

// Translator retrieves localized messages for issue codes. data provides
// optional metadata to embed in the message (for example, "keyword" or
// "ref").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "unresolvable_reference":
			return "参照を解決できません"
		case "cyclic_load":
			return "読み込みが循環しています"
		case "ambiguous_type":
			return "型名が一意に決まりません"
		case "unsupported_construct":
			return "未対応のスキーマ構文です"
		case "unknown_format":
			return "未知のフォーマットです"
		case "parse_error":
			return "解析エラー"
		case "not_found":
			return "見つかりません"
		}
	default: // "en"
		switch code {
		case "unresolvable_reference":
			return "unresolvable reference"
		case "cyclic_load":
			return "cyclic document load"
		case "ambiguous_type":
			return "ambiguous type name"
		case "unsupported_construct":
			return "unsupported schema construct"
		case "unknown_format":
			return "unknown format"
		case "parse_error":
			return "parse error"
		case "not_found":
			return "not found"
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
