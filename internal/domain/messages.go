package domain

// User-facing messages. The application speaks Vietnamese.
const (
	MsgInvalidCredentials        = "Tên đăng nhập hoặc mật khẩu không đúng"
	MsgUsernameTaken             = "Tên đăng nhập đã tồn tại"
	MsgSomethingWentWrong        = "Có lỗi xảy ra, vui lòng thử lại"
	MsgNotEnoughData             = "Bạn cần có ít nhất 1 bản ghi giấc ngủ để nhận gợi ý"
	MsgRecommendationUnavailable = "Không thể tạo gợi ý vào lúc này. Vui lòng thử lại sau."
	MsgRecommendationInProgress  = "Đang tạo gợi ý, vui lòng đợi kết quả hiện tại"
)
