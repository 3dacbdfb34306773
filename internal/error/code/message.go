package code

// 错误码消息映射
// 面向用户的提示沿用前端表单的印尼语文案
var codeMessageMap = map[int]string{
	// 通用错误码
	ErrSuccess:         "OK",
	ErrUnknown:         "Internal server error",
	ErrBind:            "Invalid request",
	ErrValidation:      "Invalid request",
	ErrTokenInvalid:    "Invalid token",
	ErrTooManyRequests: "Too many requests",
	ErrDatabase:        "Internal server error",

	// 报名相关错误码
	ErrParticipantNotFound: "Not found",
	ErrRequiredFields:      "Field wajib: nama, nim, judul",
	ErrNIMFormat:           "Format NIM tidak valid (8-12 digit).",
	ErrDuplicateNIM:        "NIM sudah terdaftar.",

	// 文件相关错误码
	ErrFileTooLarge: "Ukuran berkas melebihi batas maksimum.",
	ErrFileType:     "Berkas harus berformat PDF.",
	ErrFileStorage:  "Internal server error",

	// 认证相关错误码
	ErrPasswordRequired:  "Password required",
	ErrPasswordIncorrect: "Password salah",
	ErrForbidden:         "Forbidden",
}

// 错误码HTTP状态码映射
var codeStatusMap = map[int]int{
	// 通用错误码
	ErrSuccess:         StatusOK,
	ErrUnknown:         StatusInternalServerError,
	ErrBind:            StatusBadRequest,
	ErrValidation:      StatusBadRequest,
	ErrTokenInvalid:    StatusUnauthorized,
	ErrTooManyRequests: StatusTooManyRequests,
	ErrDatabase:        StatusInternalServerError,

	// 报名相关错误码
	ErrParticipantNotFound: StatusNotFound,
	ErrRequiredFields:      StatusBadRequest,
	ErrNIMFormat:           StatusBadRequest,
	ErrDuplicateNIM:        StatusConflict,

	// 文件相关错误码
	ErrFileTooLarge: StatusRequestEntityTooLarge,
	ErrFileType:     StatusBadRequest,
	ErrFileStorage:  StatusInternalServerError,

	// 认证相关错误码
	ErrPasswordRequired:  StatusBadRequest,
	ErrPasswordIncorrect: StatusUnauthorized,
	ErrForbidden:         StatusForbidden,
}

// GetMessage 获取错误码对应的消息
func GetMessage(code int) string {
	if msg, ok := codeMessageMap[code]; ok {
		return msg
	}
	return "Internal server error"
}

// GetStatus 获取错误码对应的HTTP状态码
func GetStatus(code int) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return StatusInternalServerError
}
