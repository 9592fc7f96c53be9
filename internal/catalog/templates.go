package catalog

// Document templates use {name} placeholders substituted by the synthesizer.
// Each category holds a nonempty list; one template is picked uniformly at
// random per document.
var DocumentTemplates = map[string][]string{
	"meeting_notes": {
		"Weekly Team Meeting - {date}\n\nAttendees: {attendees}\nAgenda:\n1. Project updates\n2. Budget review\n3. Next steps\n\nAction items:\n- Complete Q{quarter} report\n- Schedule client meeting\n- Update documentation",
		"Department Meeting - {dept}\n\nDate: {date}\nLocation: Conference Room A\n\nDiscussion points:\n- Performance metrics\n- Resource allocation\n- Training needs\n\nDecisions made:\n- Approve new software purchase\n- Extend project deadline\n- Hire additional staff",
		"Project Alpha Status Meeting\n\nDate: {date}\nProject Manager: {user}\n\nProgress:\n- Phase 1: Completed\n- Phase 2: 75% complete\n- Phase 3: Planning stage\n\nRisks:\n- Budget constraints\n- Resource availability\n- Timeline pressure",
	},
	"reports": {
		"Quarterly Report Q{quarter} {year}\n\nExecutive Summary:\nThis quarter showed {trend} performance across all key metrics.\n\nKey Metrics:\n- Revenue: €{revenue}\n- Customers: {customers}\n- Growth: {growth}%\n\nRecommendations:\n- Increase marketing budget\n- Expand team capacity\n- Improve customer service",
		"Monthly Sales Report - {month} {year}\n\nDepartment: {dept}\nManager: {user}\n\nSales Performance:\n- Total Sales: €{revenue}\n- New Clients: {customers}\n- Conversion Rate: {growth}%\n\nTop Performers:\n1. Product A - €{revenue2}\n2. Product B - €{revenue3}\n3. Product C - €{revenue4}",
		"Financial Analysis Report\n\nPeriod: {month} {year}\nAnalyst: {user}\n\nBudget vs Actual:\n- Budget: €{revenue}\n- Actual: €{revenue2}\n- Variance: {growth}%\n\nExpense Categories:\n- Personnel: 60%\n- Operations: 25%\n- Marketing: 15%",
	},
	"emails": {
		"Subject: {subject}\nFrom: {sender}@company.com\nTo: {recipient}@company.com\nDate: {date}\n\nHi {recipient_name},\n\n{body}\n\nBest regards,\n{sender_name}",
		"Subject: Urgent: {subject}\nFrom: {sender}@company.com\nTo: {recipient}@company.com\nCC: manager@company.com\nDate: {date}\n\nDear {recipient_name},\n\nThis is regarding {body}\n\nPlease respond by end of day.\n\nThanks,\n{sender_name}",
	},
	"contracts": {
		"SERVICE AGREEMENT\n\nContract No: {contract_no}\nDate: {date}\nClient: {client}\nService Provider: {company}\n\nScope of Work:\n{scope}\n\nTerms:\n- Duration: {duration} months\n- Payment: €{amount}\n- Start Date: {start_date}\n\nSignatures:\nClient: ________________\nProvider: ________________",
		"EMPLOYMENT CONTRACT\n\nEmployee: {employee}\nPosition: {position}\nDepartment: {dept}\nStart Date: {date}\n\nSalary: €{salary} per year\nBenefits:\n- Health insurance\n- Vacation days: 25\n- Pension contribution: 8%\n\nTerms and Conditions:\n{terms}",
	},
}

// DocumentCategories lists the template categories in a stable order.
var DocumentCategories = []string{"meeting_notes", "reports", "emails", "contracts"}

// LogMessages maps log types to candidate log-entry messages. Types without
// an entry fall back to GenericLogMessages.
var LogMessages = map[string][]string{
	"system":      {"System startup completed", "Service started", "Driver loaded", "Hardware detected"},
	"application": {"Application launched", "User login", "File opened", "Process terminated"},
	"security":    {"Login attempt", "Permission granted", "Access denied", "Policy applied"},
	"network":     {"Connection established", "Packet received", "Timeout occurred", "DNS resolved"},
	"error":       {"File not found", "Access violation", "Memory error", "Disk full"},
}

// GenericLogMessages are used for log types without a dedicated message set.
var GenericLogMessages = []string{"Generic log message", "System event", "Process completed"}

// LogLevels are the severity labels used in generated log entries.
var LogLevels = []string{"INFO", "WARNING", "ERROR", "DEBUG", "TRACE"}
