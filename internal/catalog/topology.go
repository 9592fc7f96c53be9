package catalog

import "path/filepath"

// SystemDirs are the top-level directories created under the target root.
var SystemDirs = []string{
	"Users", "Program Files", "Program Files (x86)", "Windows",
	"Documents and Settings", "Temp", "Downloads", "Backup",
	"Projects", "Archive", "Shared", "Public",
}

// UserDirs are the subdirectories created inside every user profile.
var UserDirs = []string{
	"Desktop", "Documents", "Downloads", "Pictures", "Videos", "Music",
	"AppData/Local", "AppData/Roaming", "AppData/LocalLow",
	"Documents/Work", "Documents/Personal", "Documents/Projects",
	"Documents/Archive", "Documents/Templates", "Documents/Drafts",
	"Pictures/Vacation", "Pictures/Family", "Pictures/Work",
	"Pictures/Screenshots", "Pictures/Wallpapers",
	"Downloads/Software", "Downloads/Documents", "Downloads/Media",
	"Desktop/Shortcuts", "Desktop/Projects", "Desktop/Temp",
}

// ProgramDirs are the application directories created under Program Files.
var ProgramDirs = []string{
	"Microsoft Office/Office16", "Microsoft Office/Templates", "Microsoft Office/Add-ins",
	"Adobe/Acrobat DC", "Adobe/Photoshop", "Adobe/Illustrator",
	"Google/Chrome", "Google/Drive", "Mozilla Firefox", "Mozilla Thunderbird",
	"VLC Media Player", "7-Zip", "WinRAR", "Notepad++", "Visual Studio Code",
	"TeamViewer", "Skype", "Zoom", "Slack", "Discord",
	"Antivirus/McAfee", "Antivirus/Norton", "Backup/Acronis",
	CompanyName + "/Internal_Tools", CompanyName + "/Database",
	CompanyName + "/CRM", CompanyName + "/ERP",
}

// DepartmentDirs are the subdirectories created inside every department
// share.
var DepartmentDirs = []string{"Projects", "Reports", "Meetings", "Archive", "Templates", "Budget"}

// ProjectDirs are the subdirectories created inside every project.
var ProjectDirs = []string{"Documents", "Code", "Tests", "Meetings", "Archive"}

// Topology expands the full static directory tree for the given users,
// departments, and projects, as paths relative to the target root. It is
// consumed once, before any phase begins.
func Topology(users, departments, projects []string) []string {
	var dirs []string
	dirs = append(dirs, SystemDirs...)

	for _, user := range users {
		base := filepath.Join("Users", user)
		dirs = append(dirs, base)
		for _, sub := range UserDirs {
			dirs = append(dirs, filepath.Join(base, filepath.FromSlash(sub)))
		}
	}

	for _, program := range ProgramDirs {
		dirs = append(dirs, filepath.Join("Program Files", filepath.FromSlash(program)))
	}

	for _, dept := range departments {
		base := filepath.Join("Shared", dept)
		dirs = append(dirs, base)
		for _, sub := range DepartmentDirs {
			dirs = append(dirs, filepath.Join(base, sub))
		}
	}

	for _, project := range projects {
		base := filepath.Join("Projects", project)
		for _, sub := range ProjectDirs {
			dirs = append(dirs, filepath.Join(base, sub))
		}
	}

	dirs = append(dirs,
		filepath.Join("Windows", "Logs"),
		filepath.Join("Windows", "Temp", "Cache"),
	)

	return dirs
}
