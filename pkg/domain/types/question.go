package types

// QuestionType tags the intent of a free-text question.
type QuestionType string

const (
	QuestionInformational QuestionType = "informational"
	QuestionFinancial     QuestionType = "financial"
	QuestionTemporal      QuestionType = "temporal"
	QuestionSpatial       QuestionType = "spatial"
	QuestionProcedural    QuestionType = "procedural"
	QuestionGeneral       QuestionType = "general"
)

func (t QuestionType) String() string {
	return string(t)
}

// Complexity is an ordered tier describing how much synthesis a question
// demands from the generative model.
type Complexity string

const (
	ComplexitySimple   Complexity = "simple"
	ComplexityModerate Complexity = "moderate"
	ComplexityComplex  Complexity = "complex"
)

func (c Complexity) String() string {
	return string(c)
}
