package meetings

// ServiceDescription описание стороннего сервиса видеосвязи.
// Используется только для отображения, поведения за этим нет.
type ServiceDescription struct {
	Name        string   `json:"name"`
	URL         string   `json:"url"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
}

// AlternativeServices возвращает статический каталог сторонних сервисов,
// которые можно использовать вместо сгенерированной ссылки
func AlternativeServices() []ServiceDescription {
	return []ServiceDescription{
		{
			Name:        "Jitsi Meet",
			URL:         "https://meet.jit.si/",
			Description: "Free, no account required",
			Features:    []string{"Screen sharing", "Chat", "Recording"},
		},
		{
			Name:        "Whereby",
			URL:         "https://whereby.com/",
			Description: "Browser-based, free for small groups",
			Features:    []string{"Custom room names", "Screen sharing", "Chat"},
		},
		{
			Name:        "BigBlueButton",
			URL:         "https://bigbluebutton.org/",
			Description: "Open source, self-hosted option",
			Features:    []string{"Whiteboard", "Breakout rooms", "Polls"},
		},
		{
			Name:        "Discord",
			URL:         "https://discord.com/",
			Description: "Gaming-focused but works for meetings",
			Features:    []string{"Voice channels", "Screen sharing", "Text chat"},
		},
	}
}
