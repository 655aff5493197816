package geminidomain

// Topic identifica o tipo de narrativa pedida ao modelo. O fallback usa o tópico
// para escolher o texto substituto.
type Topic string

const (
	TopicForecast Topic = "forecast"
	TopicAdvisor  Topic = "advisor"
	TopicSecurity Topic = "security"
)

type NarrationRequest struct {
	Topic Topic
	// Prompt completo enviado ao modelo
	Prompt string
	// Subject é a entrada original do usuário (a pergunta do chat, por exemplo)
	Subject string
	// Facts são linhas determinísticas que o fallback pode apresentar como tópicos
	Facts []string
}

type ImageRequest struct {
	Prompt   string
	Image    []byte
	MimeType string
}
