package models

type Language string

const (
	LanguageJavaScript Language = "javascript"
	LanguageTypeScript Language = "typescript"
	LanguagePython     Language = "python"
	LanguageJava       Language = "java"
	LanguageCPP        Language = "cpp"
	LanguageGo         Language = "go"
	LanguageRust       Language = "rust"
)

var SupportedLanguages = []Language{
	LanguageJavaScript,
	LanguageTypeScript,
	LanguagePython,
	LanguageJava,
	LanguageCPP,
	LanguageGo,
	LanguageRust,
}

type FindingKind string

const (
	KindError      FindingKind = "error"
	KindWarning    FindingKind = "warning"
	KindSuggestion FindingKind = "suggestion"
)

type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

type Quality string

const (
	QualityExcellent Quality = "excellent"
	QualityGood      Quality = "good"
	QualityFair      Quality = "fair"
	QualityPoor      Quality = "poor"
)

// Source is the code handed to the local checkers.
type Source struct {
	Code     string
	Language Language
}

type Fix struct {
	Title string `json:"title"`
	Code  string `json:"code"`
}

// One issue spotted by a checker
type Finding struct {
	ID          string      `json:"id"`
	Rule        string      `json:"rule"`
	Line        int         `json:"line"`
	Kind        FindingKind `json:"kind"`
	Severity    Severity    `json:"severity"`
	Message     string      `json:"message"`
	Description string      `json:"description"`
	Fix         *Fix        `json:"fix,omitempty"`
}

// Explanation describes what a notable line of code does.
type Explanation struct {
	ID       string   `json:"id"`
	Line     int      `json:"line"`
	Code     string   `json:"code"`
	Text     string   `json:"explanation"`
	Concepts []string `json:"concepts"`
}

// Summary of all findings for one source
type Report struct {
	Findings     []Finding     `json:"findings"`
	Explanations []Explanation `json:"explanations"`
	Errors       int           `json:"errors"`
	Warnings     int           `json:"warnings"`
	Suggestions  int           `json:"suggestions"`
	Quality      Quality       `json:"quality"`
	Advice       []string      `json:"advice"`
}
