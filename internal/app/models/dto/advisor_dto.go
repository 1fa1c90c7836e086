package dto

// AskRequest carries a free-text question for the advisor
type AskRequest struct {
	Question string `json:"question" binding:"required" example:"Why can't I take CSC499?"`
}

// AskResponse is the advisor's answer
type AskResponse struct {
	Response   string `json:"response" example:"Your current CGPA is 2.4. To boost this, ..."`
	Intent     string `json:"intent" example:"improve_performance" enums:"course_eligibility,improve_performance,fallback"`
	CourseCode string `json:"courseCode,omitempty" example:"CSC499"`
}
