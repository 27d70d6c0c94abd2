package helpers

// User-facing CLI messages.
const (
	MsgNoHistoryRecorded  = "No history recorded yet."
	MsgHistoryCleared     = "History cleared."
	MsgConfigurationValid = "Configuration valid"
	MsgDesigningPlan      = "Designing Plan..."
	MsgThinking           = "Thinking..."

	TitlePlan   = "🎯 Your Custom Plan"
	TitleAnswer = "💬 Coach Answer"
	TitleRecipe = "🍳 Your Recipe"
)
