package i18n

// Error codes must match the codes defined in internal/platform/errors/codes.go.
// These are duplicated as strings to avoid an import cycle.
const (
	CodeNotFound  = "NOT_FOUND"
	CodeParse     = "PARSE_ERROR"
	CodeNotObject = "NOT_OBJECT"
	CodeRead      = "READ_ERROR"
	CodeWrite     = "WRITE_ERROR"
)

var enUSMessages = map[Code]string{
	CodeNotFound:  "translation file {{.Path}} does not exist",
	CodeParse:     "translation file {{.Path}} is not valid JSON",
	CodeNotObject: "{{.Key}} in {{.Path}} is not a JSON object",
	CodeRead:      "translation file {{.Path}} could not be read",
	CodeWrite:     "translation file {{.Path}} could not be written",
}

var frFRMessages = map[Code]string{
	CodeNotFound:  "le fichier de traduction {{.Path}} n'existe pas",
	CodeParse:     "le fichier de traduction {{.Path}} n'est pas un JSON valide",
	CodeNotObject: "{{.Key}} dans {{.Path}} n'est pas un objet JSON",
	CodeRead:      "le fichier de traduction {{.Path}} n'a pas pu être lu",
	CodeWrite:     "le fichier de traduction {{.Path}} n'a pas pu être écrit",
}
