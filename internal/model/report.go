package model

// Summary is the admin overview of the registry.
type Summary struct {
	TotalStudents       int                      `json:"totalStudents"`
	ActiveStudents      int                      `json:"activeStudents"`
	TotalModules        int                      `json:"totalModules"`
	TotalEnrollments    int                      `json:"totalEnrollments"`
	GradedEnrollments   int                      `json:"gradedEnrollments"`
	AverageMark         *float64                 `json:"averageMark"`
	GradeDistribution   map[Grade]int            `json:"gradeDistribution"`
	EnrollmentsByStatus map[EnrollmentStatus]int `json:"enrollmentsByStatus"`
}

// Transcript lists a student's enrollments with credit totals.
type Transcript struct {
	Student          *Student           `json:"student"`
	Records          []EnrollmentRecord `json:"records"`
	CreditsAttempted int                `json:"creditsAttempted"`
	CreditsEarned    int                `json:"creditsEarned"`
	WeightedAverage  *float64           `json:"weightedAverage"`
}
