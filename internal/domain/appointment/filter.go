package appointment

// ListFilter combina as dimensões de filtragem do painel admin.
// Campos vazios não são aplicados; os presentes combinam com AND.
// Search é substring case-insensitive em nome, telefone e email (OR).
type ListFilter struct {
	Search string
	Brand  string
	Date   string
	Status string
}
