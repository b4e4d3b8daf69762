package gemini

const geminiEndpoint = "https://generativelanguage.googleapis.com/%v/models"

const (
	roleUser  = "user"
	roleModel = "model"
)
