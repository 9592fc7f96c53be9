package catalog

import "fmt"

// CompanyName labels the simulated corporate environment.
const CompanyName = "TechCorp_Solutions"

// Users are the simulated user profiles.
var Users = []string{
	"John_Doe", "Sarah_Smith", "Mike_Johnson", "Emma_Wilson", "Admin", "Guest",
	"Alice_Cooper", "Bob_Miller", "Carol_Davis", "David_Brown", "Eva_Garcia",
	"Frank_Martinez", "Grace_Lee", "Henry_Taylor", "Iris_Anderson", "Jack_White",
	"Kate_Thompson", "Liam_Clark", "Maya_Rodriguez", "Noah_Lewis", "Olivia_Walker",
}

// Departments are the simulated corporate departments.
var Departments = []string{
	"IT", "HR", "Finance", "Marketing", "Sales", "Legal", "Operations", "R&D",
}

// Projects are the simulated project directories.
var Projects = []string{
	"Project_Alpha", "Project_Beta", "Project_Gamma", "Website_Redesign",
	"Mobile_App", "Database_Migration", "Security_Audit", "Cloud_Migration",
	"AI_Initiative", "Digital_Transformation",
}

// LogTypes are the simulated Windows log categories.
var LogTypes = []string{
	"system", "application", "security", "setup", "hardware",
	"network", "performance", "error", "warning", "information",
}

// DocumentExtensions are the extensions used for generated documents.
var DocumentExtensions = []string{".txt", ".docx", ".pdf", ".rtf", ".odt"}

// WorkExtensions are the extensions used for work documents.
var WorkExtensions = []string{".docx", ".pdf", ".txt"}

// PersonalExtensions are the extensions used for personal documents.
var PersonalExtensions = []string{".txt", ".docx"}

// DesktopExtensions are the extensions used for desktop files.
var DesktopExtensions = []string{".txt", ".docx", ".pdf", ".lnk"}

// ReportExtensions are the extensions used for department reports.
var ReportExtensions = []string{".docx", ".pdf", ".xlsx"}

// ProjectExtensions are the extensions used for department project files.
var ProjectExtensions = []string{".docx", ".pdf"}

// Months used in generated content.
var Months = []string{"January", "February", "March", "April", "May", "June"}

// Trends used in generated report content.
var Trends = []string{"strong", "moderate", "weak", "excellent"}

// CacheApplications are the applications attributed to cache files.
var CacheApplications = []string{"Chrome", "Firefox", "Office", "System"}

// DeleteReasons are the reasons attributed to deleted files.
var DeleteReasons = []string{"User deleted", "System cleanup", "Security policy", "Disk cleanup"}

// DeletedSets maps each deleted-file category to the filenames created and
// then removed during the deleted-files simulation.
var DeletedSets = map[string][]string{
	"confidential": {
		"salary_information.xlsx", "employee_records.docx", "financial_audit.pdf",
		"merger_plans.pptx", "customer_database.csv", "security_codes.txt",
	},
	"personal": {
		"personal_photos.zip", "private_emails.pst", "banking_info.pdf",
		"medical_records.docx", "insurance_documents.pdf", "tax_returns.xlsx",
	},
	"system": {
		"system_backup.bak", "registry_backup.reg", "password_cache.dat",
		"browser_history.db", "temp_files.tmp", "crash_dumps.dmp",
	},
	"projects": {
		"source_code.zip", "database_schema.sql", "api_keys.json",
		"client_data.xlsx", "project_notes.docx", "meeting_recordings.mp4",
	},
}

// DeletedCategories lists the deleted-file categories in a stable order.
var DeletedCategories = []string{"confidential", "personal", "system", "projects"}

// ImageURLs returns the default image-service URL list: n distinct Lorem
// Picsum endpoints.
func ImageURLs(n int) []string {
	urls := make([]string, n)
	for i := range urls {
		urls[i] = fmt.Sprintf("https://picsum.photos/800/600?random=%d", i+1)
	}
	return urls
}
