package dto

// PerformanceResponse is a credit-weighted summary of graded attempts
type PerformanceResponse struct {
	TotalCredits int     `json:"totalCredits" example:"8"`
	TotalPoints  float64 `json:"totalPoints" example:"18"`
	Average      float64 `json:"cgpa" example:"2.25"`
}

// SemesterPerformanceResponse is the performance restricted to one semester
type SemesterPerformanceResponse struct {
	SemesterID    int64               `json:"semesterId" example:"1"`
	SemesterName  string              `json:"semesterName" example:"Year 1 Sem 1"`
	PassedCredits int                 `json:"passedCredits" example:"5"`
	Performance   PerformanceResponse `json:"performance"`
}

// EligibilityResponse is the resolver's verdict for one course
type EligibilityResponse struct {
	CourseID   int64    `json:"courseId" example:"4"`
	CourseCode string   `json:"courseCode" example:"CSC201"`
	CourseName string   `json:"courseName,omitempty" example:"Data Structures"`
	Credits    int      `json:"credits,omitempty" example:"3"`
	Status     string   `json:"status" example:"Blocked" enums:"Blocked,Eligible,Completed"`
	Reason     string   `json:"reason" example:"Missing prerequisites: CSC101"`
	Missing    []string `json:"missing,omitempty"`
}

// DashboardResponse aggregates a student's standing
type DashboardResponse struct {
	Student         StudentResponse               `json:"student"`
	Cumulative      PerformanceResponse           `json:"cumulative"`
	Semesters       []SemesterPerformanceResponse `json:"semesters"`
	Recommendations []EligibilityResponse         `json:"recommendations"`
}
