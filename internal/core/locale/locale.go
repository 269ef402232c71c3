package locale

// Table holds the role labels and markers for one interface language.
type Table struct {
	Code        string
	User        string
	Assistant   string
	Tool        string
	Result      string
	Param       string
	UserEmoji   string
	AssistEmoji string
}

// DefaultCode is used when an unsupported language code is requested.
const DefaultCode = "zh"

var tables = map[string]Table{
	"zh": {Code: "zh", User: "用户", Assistant: "助手", Result: "✅ 结果:", Param: "参数:"},
	"en": {Code: "en", User: "User", Assistant: "Assistant", Result: "✅ Result:", Param: "Args:"},
	"es": {Code: "es", User: "Usuario", Assistant: "Asistente", Result: "✅ Resultado:", Param: "Parámetros:"},
	"fr": {Code: "fr", User: "Utilisateur", Assistant: "Assistant", Result: "✅ Résultat:", Param: "Paramètres:"},
	"de": {Code: "de", User: "Benutzer", Assistant: "Assistent", Result: "✅ Ergebnis:", Param: "Parameter:"},
	"ja": {Code: "ja", User: "ユーザー", Assistant: "アシスタント", Result: "✅ 結果:", Param: "引数:"},
	"ko": {Code: "ko", User: "사용자", Assistant: "어시스턴트", Result: "✅ 결과:", Param: "매개변수:"},
	"ru": {Code: "ru", User: "Пользователь", Assistant: "Ассистент", Result: "✅ Результат:", Param: "Параметры:"},
	"pt": {Code: "pt", User: "Usuário", Assistant: "Assistente", Result: "✅ Resultado:", Param: "Parâmetros:"},
	"it": {Code: "it", User: "Utente", Assistant: "Assistente", Result: "✅ Risultato:", Param: "Parametri:"},
}

func init() {
	for code, t := range tables {
		t.Tool = "🔧"
		t.UserEmoji = "👤"
		t.AssistEmoji = "🤖"
		tables[code] = t
	}
}

// Lookup returns the table for the given language code, falling back to
// DefaultCode for any unsupported code. It never fails.
func Lookup(code string) Table {
	if t, ok := tables[code]; ok {
		return t
	}
	return tables[DefaultCode]
}

// Supported reports whether code is one of the ten built-in languages.
func Supported(code string) bool {
	_, ok := tables[code]
	return ok
}

// Codes returns the supported language codes in stable order.
func Codes() []string {
	return []string{"zh", "en", "es", "fr", "de", "ja", "ko", "ru", "pt", "it"}
}
