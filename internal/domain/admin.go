package domain

// User — пользователь текущей сессии, полученный от auth-провайдера.
// Членство его ID в таблице admins является единственным критерием авторизации.
type User struct {
	ID    string
	Email string
}
