package model

type Testimonial struct {
	ID      string `json:"id" yaml:"id"`
	Name    string `json:"name" yaml:"name"`
	Content string `json:"content" yaml:"content"`
	Rating  int    `json:"rating" yaml:"rating"` // 1-5 stars
	Game    string `json:"game" yaml:"game"`
}
