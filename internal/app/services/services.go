package services

// Services defined in this package:
// - AuthService: registration, login and profile
// - CourseService: catalog reads plus course and lesson management
// - EnrollmentService: enrollment requests and instructor decisions
// - ProgressService: lesson completion
// - MonitorService: the instructor dashboard
