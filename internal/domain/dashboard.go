package domain

type StatCard struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Value string `json:"value"`
}

type ChatRequest struct {
	Message string `json:"message"`
}

type ChatResponse struct {
	Sender string `json:"sender"`
	Text   string `json:"text"`
}
