package i18n

import "sync"

// Translator retrieves localized messages for rejection codes.
// data provides optional metadata to embed in the message ("group",
// "position", "hint").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	group := data["group"]
	switch t.lang {
	case "ja":
		switch code {
		case "empty_required_digits":
			if g := jaGroup(group); g != "" {
				return g + "の数字が必要です"
			}
			return "数字が必要です"
		case "invalid_separator_position":
			return "区切り文字の位置が不正です"
		case "unsupported_base":
			return "この基数はサポートされていません"
		case "missing_base_prefix":
			return "基数の接頭辞がありません"
		case "unexpected_base_prefix":
			return "基数の接頭辞が不正です"
		case "disallowed_sign":
			return "符号は使用できません"
		case "special_value_disallowed":
			return "特殊値は使用できません"
		case "malformed_special_value":
			return "特殊値の綴りが不正です"
		case "integer_overflow":
			return "整数が範囲外です"
		case "float_overflow":
			return "浮動小数点数が範囲外です"
		case "capability_disabled":
			return "この操作は無効化されています"
		case "invalid_character":
			return "不正な文字です"
		case "missing_sign":
			return "符号が必要です"
		case "leading_zeros":
			return "先頭のゼロは使用できません"
		case "exponent_disallowed":
			return "指数表記は使用できません"
		case "missing_exponent":
			return "指数表記が必要です"
		case "integer_only":
			return "小数点または指数がありません"
		case "invalid_format":
			return "形式が不正です"
		}
	default: // "en"
		switch code {
		case "empty_required_digits":
			if group != "" {
				return "required " + group + " digits are missing"
			}
			return "required digits are missing"
		case "invalid_separator_position":
			if p := data["position"]; p != "" {
				return p + " digit separator not allowed"
			}
			return "digit separator not allowed here"
		case "unsupported_base":
			return "unsupported base"
		case "missing_base_prefix":
			return "missing base prefix"
		case "unexpected_base_prefix":
			return "unexpected base prefix"
		case "disallowed_sign":
			return "sign not allowed"
		case "special_value_disallowed":
			return "special value not allowed"
		case "malformed_special_value":
			return "malformed special value"
		case "integer_overflow":
			return "integer out of range"
		case "float_overflow":
			return "float out of range"
		case "capability_disabled":
			return "capability disabled"
		case "invalid_character":
			return "invalid character"
		case "missing_sign":
			return "sign required"
		case "leading_zeros":
			return "leading zeros not allowed"
		case "exponent_disallowed":
			return "exponent not allowed"
		case "missing_exponent":
			return "exponent required"
		case "integer_only":
			return "no decimal point or exponent"
		case "invalid_format":
			return "invalid format"
		}
	}
	return code
}

func jaGroup(g string) string {
	switch g {
	case "integer":
		return "整数部"
	case "fraction":
		return "小数部"
	case "exponent":
		return "指数部"
	case "mantissa":
		return "仮数部"
	}
	return ""
}

var (
	mu                sync.RWMutex
	currentTranslator Translator = dictTranslator{lang: "en"}
)

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	mu.Lock()
	currentTranslator = dictTranslator{lang: lang}
	mu.Unlock()
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	mu.Lock()
	currentTranslator = tr
	mu.Unlock()
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string {
	mu.RLock()
	tr := currentTranslator
	mu.RUnlock()
	return tr.Message(code, data)
}
