package common

// Paths of the user REST API, relative to the server root.
const (
	UserAPIBasePath = "/api/user"

	ListUsersPath  = UserAPIBasePath + "/getUsers"
	CreateUserPath = UserAPIBasePath + "/register"
	UpdateUserPath = UserAPIBasePath + "/updateUser/"
	DeleteUserPath = UserAPIBasePath + "/deleteUser/"
)

// RequestIDHeaderName carries the client-generated correlation id.
const RequestIDHeaderName = "X-Request-ID"
