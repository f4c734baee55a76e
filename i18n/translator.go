package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "field", "expected", "min", "max").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	field := data["field"]
	switch t.lang {
	case "ja":
		switch code {
		case "required":
			return withField(field, "必須プロパティが不足しています")
		case "invalid_type":
			if exp := data["expected"]; exp != "" {
				return withField(field, "型が不正です（期待: "+exp+"）")
			}
			return withField(field, "型が不正です")
		case "out_of_range":
			if data["min"] != "" || data["max"] != "" {
				return withField(field, "値が範囲 ["+data["min"]+", "+data["max"]+"] の外です")
			}
			return withField(field, "値が範囲外です")
		case "parse_error":
			return "解析エラー"
		case "unsupported_value":
			return withField(field, "シリアライズできない値です")
		}
	default: // "en"
		switch code {
		case "required":
			return withField(field, "required field missing")
		case "invalid_type":
			if exp := data["expected"]; exp != "" {
				return withField(field, "invalid type, expected "+exp)
			}
			return withField(field, "invalid type")
		case "out_of_range":
			if data["min"] != "" || data["max"] != "" {
				return withField(field, "value out of range ["+data["min"]+", "+data["max"]+"]")
			}
			return withField(field, "value out of range")
		case "parse_error":
			return "parse error"
		case "unsupported_value":
			return withField(field, "value has no JSON representation")
		}
	}
	return code
}

// withField prefixes the message with the offending field name when known.
func withField(field, msg string) string {
	if field == "" {
		return msg
	}
	return field + ": " + msg
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
