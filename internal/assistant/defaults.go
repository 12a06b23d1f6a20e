// ABOUTME: Built-in assistant definitions used by the settings panel
// ABOUTME: These are the customizable baseline personas shipped with the client

package assistant

// Defaults returns the built-in assistant set. The general assistant is the
// only one that cannot be customized or disabled.
func Defaults() []Assistant {
	return []Assistant{
		{
			ID:           "general",
			Name:         "MOKOM General Assistant",
			Description:  "The MOKOM AI general assistant. Answers questions, holds conversations, and translates text.",
			Icon:         "bot",
			Enabled:      true,
			Customizable: false,
			Status:       StatusIdle,
			Category:     CategoryGeneral,
			Capabilities: []string{"conversation", "question answering", "translation", "writing", "knowledge lookup"},
		},
		{
			ID:           "code-assistant",
			Name:         "Code Assistant",
			Description:  "Programming assistant fluent in multiple languages. Helps with code problems, reviews, and technical advice.",
			Icon:         "code",
			Enabled:      true,
			Customizable: true,
			Status:       StatusIdle,
			Category:     CategoryProfessional,
			Capabilities: []string{"coding", "debugging", "code review", "technical consulting", "architecture", "performance tuning"},
		},
		{
			ID:           "creative-writer",
			Name:         "Creative Writing Assistant",
			Description:  "Writing assistant for creative work: stories, copy, and content planning.",
			Icon:         "palette",
			Enabled:      true,
			Customizable: true,
			Status:       StatusIdle,
			Category:     CategoryProfessional,
			Capabilities: []string{"creative writing", "copywriting", "storytelling", "poetry", "marketing copy", "content editing"},
		},
		{
			ID:           "data-analyst",
			Name:         "Data Analysis Assistant",
			Description:  "Data assistant for processing datasets, producing reports, and running statistical analysis.",
			Icon:         "calculator",
			Enabled:      true,
			Customizable: true,
			Status:       StatusIdle,
			Category:     CategoryProfessional,
			Capabilities: []string{"data analysis", "report generation", "statistics", "charting", "trend analysis", "data cleaning"},
		},
		{
			ID:           "language-tutor",
			Name:         "Language Learning Assistant",
			Description:  "Multi-language tutor for practicing conversation, fixing grammar, and planning study.",
			Icon:         "globe",
			Enabled:      true,
			Customizable: true,
			Status:       StatusIdle,
			Category:     CategoryProfessional,
			Capabilities: []string{"language teaching", "grammar correction", "conversation practice", "vocabulary", "culture notes", "study planning"},
		},
		{
			ID:           "research-assistant",
			Name:         "Research Assistant",
			Description:  "Academic assistant for literature review, data collection, and paper writing.",
			Icon:         "filetext",
			Enabled:      true,
			Customizable: true,
			Status:       StatusIdle,
			Category:     CategoryProfessional,
			Capabilities: []string{"literature review", "data collection", "paper writing", "academic analysis", "citation formats", "research methods"},
		},
	}
}
