package roles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfer_EmptySkillsFallsBackToDefault(t *testing.T) {
	assert.Equal(t, DefaultRole, Infer(nil))
	assert.Equal(t, DefaultRole, Infer([]string{}))
}

func TestInfer_FrontendSkills(t *testing.T) {
	role := Infer([]string{"React", "CSS", "HTML"})

	assert.Equal(t, "frontend developer", role)
}

func TestInfer_BackendSkills(t *testing.T) {
	role := Infer([]string{"Python", "Django", "Flask"})

	assert.Equal(t, "backend developer", role)
}

func TestInfer_FullStackOverride(t *testing.T) {
	// Two frontend plus two backend skills wins even though neither
	// category has the highest raw count.
	role := Infer([]string{"React", "CSS", "Python", "Django", "AWS"})

	assert.Equal(t, "full stack developer", role)
}

func TestInfer_DataScienceSkills(t *testing.T) {
	role := Infer([]string{"Machine Learning", "TensorFlow", "PyTorch"})

	assert.Equal(t, "data scientist", role)
}

func TestInfer_TieBreaksByDeclarationOrder(t *testing.T) {
	// One frontend skill, one devops skill: frontend is declared first.
	role := Infer([]string{"React", "Docker"})

	assert.Equal(t, "frontend developer", role)
}

func TestInfer_UnknownSkillsUseFirstSkill(t *testing.T) {
	role := Infer([]string{"COBOL", "Fortran"})

	assert.Equal(t, "cobol developer", role)
}

func TestInfer_CaseInsensitive(t *testing.T) {
	assert.Equal(t, Infer([]string{"react", "css", "html"}), Infer([]string{"REACT", "Css", "Html"}))
}

func TestAlternate_ReturnsDifferentKeyword(t *testing.T) {
	skills := []string{"React", "Python", "AWS"}

	alternate := Alternate(skills, "frontend developer")

	assert.NotEqual(t, "frontend developer", alternate)
}

func TestAlternate_PrefersNonOverlappingPhrase(t *testing.T) {
	skills := []string{"React", "Python", "AWS"}

	alternate := Alternate(skills, "react developer")

	// "ui engineer" is the first candidate sharing no word with the current
	// keyword.
	assert.Equal(t, "ui engineer", alternate)
}

func TestAlternate_NoCandidatesFallsBackToInfer(t *testing.T) {
	alternate := Alternate([]string{"COBOL"}, "cobol developer")

	assert.Equal(t, "cobol developer", alternate)
}

func TestAlternate_Deterministic(t *testing.T) {
	skills := []string{"Docker", "Kubernetes", "AWS"}

	first := Alternate(skills, "devops engineer")
	second := Alternate(skills, "devops engineer")

	assert.Equal(t, first, second)
}

func TestAlternate_EmptySkills(t *testing.T) {
	assert.Equal(t, DefaultRole, Alternate(nil, "anything"))
}
