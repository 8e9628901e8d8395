package assist

const SystemPrompt = "You are a helpful assistant. Always respond with clear, friendly answers."

const (
	SignUpPrompt     = "❗ Please sign up first before chatting."
	OrderNotFound    = "Order not found."
	ApologyReply     = "Sorry, I couldn't process your request right now."
	FAQAddedMessage  = "FAQ added successfully."
	FAQRequiredError = "Both question and answer are required."
)

const orderStatusPhrase = "order status"
