package code

// HTTP状态码.
const (
	// StatusOK - 200: 成功.
	StatusOK = 200
	// StatusBadRequest - 400: 请求参数错误.
	StatusBadRequest = 400
	// StatusUnauthorized - 401: 未授权.
	StatusUnauthorized = 401
	// StatusForbidden - 403: 禁止访问.
	StatusForbidden = 403
	// StatusNotFound - 404: 资源不存在.
	StatusNotFound = 404
	// StatusConflict - 409: 资源冲突.
	StatusConflict = 409
	// StatusRequestEntityTooLarge - 413: 请求体过大.
	StatusRequestEntityTooLarge = 413
	// StatusTooManyRequests - 429: 请求过多.
	StatusTooManyRequests = 429
	// StatusInternalServerError - 500: 服务器内部错误.
	StatusInternalServerError = 500
)

// 通用错误码 (100xxx).
const (
	// ErrSuccess - 200: 成功.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: 未知错误.
	ErrUnknown
	// ErrBind - 400: 请求参数绑定错误.
	ErrBind
	// ErrValidation - 400: 请求参数验证错误.
	ErrValidation
	// ErrTokenInvalid - 401: 令牌无效.
	ErrTokenInvalid
	// ErrTooManyRequests - 429: 请求频率过高.
	ErrTooManyRequests
	// ErrDatabase - 500: 数据库错误.
	ErrDatabase
)

// 报名相关错误码 (101xxx).
const (
	// ErrParticipantNotFound - 404: 报名记录不存在.
	ErrParticipantNotFound int = iota + 101000
	// ErrRequiredFields - 400: 缺少必填字段.
	ErrRequiredFields
	// ErrNIMFormat - 400: NIM格式错误.
	ErrNIMFormat
	// ErrDuplicateNIM - 409: NIM已被注册.
	ErrDuplicateNIM
)

// 文件相关错误码 (102xxx).
const (
	// ErrFileTooLarge - 413: 上传文件过大.
	ErrFileTooLarge int = iota + 102000
	// ErrFileType - 400: 上传文件类型不允许.
	ErrFileType
	// ErrFileStorage - 500: 文件存储失败.
	ErrFileStorage
)

// 认证相关错误码 (103xxx).
const (
	// ErrPasswordRequired - 400: 缺少密码.
	ErrPasswordRequired int = iota + 103000
	// ErrPasswordIncorrect - 401: 密码错误.
	ErrPasswordIncorrect
	// ErrForbidden - 403: 权限不足.
	ErrForbidden
)
