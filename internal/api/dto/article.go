package dto

type ArticleGenerateRequest struct {
	Topic        string `json:"topic" binding:"required,max=255"`
	CategorySlug string `json:"category_slug" binding:"required"`
}

type ArticleBatchRequest struct {
	Topics       []string `json:"topics" binding:"required,min=1,max=20,dive,required,max=255"`
	CategorySlug string   `json:"category_slug" binding:"required"`
}

type ArticleResult struct {
	Topic string `json:"topic"`
	Slug  string `json:"slug,omitempty"`
	Error string `json:"error,omitempty"`
}

type ArticleBatchResult struct {
	Succeeded int             `json:"succeeded"`
	Failed    int             `json:"failed"`
	Results   []ArticleResult `json:"results"`
}
