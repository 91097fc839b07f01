package i18n

import "strings"

// Translator retrieves localized messages for validation keywords.
// data provides optional values to embed in the message (for example,
// "limit" or "type"); placeholders are written as {name}.
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

var dictionaries = map[string]map[string]string{
	"en": {
		"type":                 "must be {type}",
		"required":             "is required",
		"additionalProperties": "is not an allowed property",
		"oneOf":                "must match exactly one variant",
		"enum":                 "must be one of the allowed values",
		"const":                "must be equal to the constant",
		"minimum":              "must be >= {limit}",
		"maximum":              "must be <= {limit}",
		"exclusiveMinimum":     "must be > {limit}",
		"exclusiveMaximum":     "must be < {limit}",
		"multipleOf":           "must be a multiple of {limit}",
		"minLength":            "must not have fewer than {limit} characters",
		"maxLength":            "must not have more than {limit} characters",
		"pattern":              "must match pattern \"{pattern}\"",
		"format":               "must match format \"{format}\"",
		"minItems":             "must not have fewer than {limit} items",
		"maxItems":             "must not have more than {limit} items",
		"uniqueItems":          "must not have duplicate items (items {i} and {j} are identical)",
		"minProperties":        "must not have fewer than {limit} properties",
		"maxProperties":        "must not have more than {limit} properties",
	},
	"ja": {
		"type":                 "{type} 型である必要があります",
		"required":             "必須項目です",
		"additionalProperties": "許可されていないプロパティです",
		"oneOf":                "いずれか一つのバリアントに一致する必要があります",
		"enum":                 "許可された値のいずれかである必要があります",
		"const":                "定数と等しい必要があります",
		"minimum":              "{limit} 以上である必要があります",
		"maximum":              "{limit} 以下である必要があります",
		"exclusiveMinimum":     "{limit} より大きい必要があります",
		"exclusiveMaximum":     "{limit} より小さい必要があります",
		"multipleOf":           "{limit} の倍数である必要があります",
		"minLength":            "{limit} 文字以上である必要があります",
		"maxLength":            "{limit} 文字以下である必要があります",
		"pattern":              "パターン \"{pattern}\" に一致する必要があります",
		"format":               "形式 \"{format}\" に一致する必要があります",
		"minItems":             "{limit} 件以上である必要があります",
		"maxItems":             "{limit} 件以下である必要があります",
		"uniqueItems":          "重複した要素があります (要素 {i} と {j})",
		"minProperties":        "{limit} 個以上のプロパティが必要です",
		"maxProperties":        "{limit} 個以下のプロパティである必要があります",
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	msg, ok := dictionaries[t.lang][code]
	if !ok {
		return code
	}
	return interpolate(msg, data)
}

func interpolate(msg string, data map[string]string) string {
	if len(data) == 0 || !strings.Contains(msg, "{") {
		return msg
	}
	pairs := make([]string, 0, len(data)*2)
	for k, v := range data {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(msg)
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

// Current returns the Translator in use.
func Current() Translator { return currentTranslator }

// ForLanguage returns a built-in Translator without touching the global one.
func ForLanguage(lang string) Translator {
	if lang != "ja" {
		lang = "en"
	}
	return dictTranslator{lang: lang}
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
