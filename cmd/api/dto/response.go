package dto

// ErrorResponseDTO는 공통 에러 응답 형식을 통일하기 위한 DTO이다.
type ErrorResponseDTO struct {
	Error string `json:"error" example:"posts-api ListPosts: status=502 body="`
}

// MessageResponseDTO는 단순 메시지 응답 형식을 통일하기 위한 DTO이다.
type MessageResponseDTO struct {
	Message string `json:"message" example:"post deleted successfully"`
}

// ErrorWithViewDTO 는 업스트림 호출이 실패했을 때 진단 메시지와 함께 변경되지 않은 화면 상태를 돌려준다.
type ErrorWithViewDTO struct {
	Error string    `json:"error"`
	View  AdminView `json:"view"`
}
