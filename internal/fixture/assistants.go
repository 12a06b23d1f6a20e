// ABOUTME: Fallback assistant set used when GET /api/assistants fails
// ABOUTME: Distinct from assistant.Defaults, which is the settings-panel baseline

package fixture

import "github.com/mokom/mokom-client/internal/assistant"

// Assistants returns the fallback assistant selection set.
func Assistants() []assistant.Assistant {
	return []assistant.Assistant{
		{
			ID:           "gpt-4",
			Name:         "GPT-4",
			Description:  "Advanced language model for complex reasoning and creative tasks",
			Icon:         "general",
			Enabled:      true,
			Customizable: true,
			Status:       assistant.StatusIdle,
			Category:     assistant.CategoryProfessional,
		},
		{
			ID:           "claude-3",
			Name:         "Claude 3",
			Description:  "Anthropic's AI assistant focused on helpful, harmless, honest responses",
			Icon:         "analytical",
			Enabled:      true,
			Customizable: true,
			Status:       assistant.StatusIdle,
			Category:     assistant.CategoryProfessional,
		},
		{
			ID:           "code-assistant",
			Name:         "Code Assistant",
			Description:  "Specialized assistant for programming, debugging, and technical docs",
			Icon:         "technical",
			Enabled:      true,
			Customizable: false,
			Status:       assistant.StatusWorking,
			Category:     assistant.CategoryProfessional,
		},
		{
			ID:           "creative-writer",
			Name:         "Creative Writer",
			Description:  "Expert in creative writing, storytelling, and content creation",
			Icon:         "creative",
			Enabled:      true,
			Customizable: true,
			Status:       assistant.StatusIdle,
			Category:     assistant.CategoryProfessional,
		},
		{
			ID:           "productivity-helper",
			Name:         "Productivity Helper",
			Description:  "Assists with task management, planning, and workflow optimization",
			Icon:         "productivity",
			Enabled:      true,
			Customizable: true,
			Status:       assistant.StatusIdle,
			Category:     assistant.CategoryProfessional,
		},
	}
}
