package upstream

// Response shapes of the remote LMS API, beyond the course document itself
// (which lives in models/course as the wire structs).

// Category is one selectable course category.
type Category struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

// Instructor is one user with the instructor role.
type Instructor struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// QuizSummary is one selectable quiz reference.
type QuizSummary struct {
	ID    string `json:"_id"`
	Title string `json:"title"`
}

// QuizOption is one answer option of a question.
type QuizOption struct {
	ID   string `json:"_id"`
	Text string `json:"text"`
}

// QuizQuestion is one question of a quiz. Correct answers never reach this
// layer; grading happens upstream.
type QuizQuestion struct {
	ID      string       `json:"_id"`
	Text    string       `json:"text"`
	Options []QuizOption `json:"options"`
}

// Quiz is a full quiz document as served to a student.
type Quiz struct {
	ID               string         `json:"_id"`
	Title            string         `json:"title"`
	TimeLimitSeconds int            `json:"timeLimitSeconds"`
	Questions        []QuizQuestion `json:"questions"`
}

// AttemptStart is the server's answer to starting a quiz attempt.
type AttemptStart struct {
	AttemptID        string `json:"attemptId"`
	TimeLimitSeconds int    `json:"timeLimitSeconds"`
}

// AttemptResult is the graded outcome of a submitted attempt.
type AttemptResult struct {
	Score    int  `json:"score"`
	MaxScore int  `json:"maxScore"`
	Passed   bool `json:"passed"`
}

// CompletionResult carries the course progress after a lesson completion.
type CompletionResult struct {
	Progress float64 `json:"progress"` // percentage 0-100
}

// Enrollment is one student-course enrollment record.
type Enrollment struct {
	ID         string  `json:"_id"`
	CourseID   string  `json:"courseId"`
	StudentID  string  `json:"studentId"`
	CourseName string  `json:"courseName"`
	Progress   float64 `json:"progress"`
	Status     string  `json:"status"`
	EnrolledAt string  `json:"enrolledAt"`
}

// HomepageSection is one editable block of the public homepage.
type HomepageSection struct {
	Title   string `json:"title"`
	Body    string `json:"body"`
	Order   int    `json:"order"`
	Visible bool   `json:"visible"`
}

// HomepageContent is the whole homepage document.
type HomepageContent struct {
	HeroTitle    string            `json:"heroTitle"`
	HeroSubtitle string            `json:"heroSubtitle"`
	Sections     []HomepageSection `json:"sections"`
}

// LiveSession is one scheduled live class.
type LiveSession struct {
	ID        string `json:"_id"`
	CourseID  string `json:"courseId"`
	Title     string `json:"title"`
	StartsAt  string `json:"startsAt"`
	JoinURL   string `json:"joinUrl"`
	HostName  string `json:"hostName"`
	DurationM int    `json:"durationMinutes"`
}

// DashboardStats is the aggregate block behind the admin and instructor
// dashboards.
type DashboardStats struct {
	TotalCourses     int     `json:"totalCourses"`
	TotalStudents    int     `json:"totalStudents"`
	TotalEnrollments int     `json:"totalEnrollments"`
	TotalRevenue     float64 `json:"totalRevenue"`
}
