package contexthelpers

type contextKey string

const CurrentPathContextKey = contextKey("currentPath")
const LanguageContextKey = contextKey("language")
