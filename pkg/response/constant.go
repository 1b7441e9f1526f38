package response

const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Something went wrong"

	BadRequestErrorCode      = 1
	InternalServerErrorCode  = 500
	UnauthorizedErrorCode    = 401
	NotFoundErrorCode        = 404
	TooManyRequestsErrorCode = 429
)
