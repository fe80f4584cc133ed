package repository

const (
	ColUsers       = "users"
	ColCommunities = "communities"
	ColEvents      = "events"
	ColForms       = "forms"
	ColSubmissions = "submissions"
)
