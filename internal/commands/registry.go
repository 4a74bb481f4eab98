package commands

// ID identifies a command. The string values are what the panel forwards.
type ID string

const (
	NewProject     ID = "new-project"
	UseVersion     ID = "use-version"
	InstallVersion ID = "install-version"
	RemoveVersion  ID = "remove-version"
	List           ID = "list"
	SetGlobal      ID = "set-global"
	RenamePackage  ID = "rename-package"
)

// Info describes a command for menus and help text.
type Info struct {
	ID          ID
	Title       string
	Description string
	// Mutating commands refresh the status line after success.
	Mutating bool
}

var registry = map[ID]Info{
	NewProject: {
		ID:          NewProject,
		Title:       "New Project",
		Description: "Create a Flutter project pinned to an FVM version",
		Mutating:    true,
	},
	UseVersion: {
		ID:          UseVersion,
		Title:       "Use Version",
		Description: "Pin an installed version for the open project",
		Mutating:    true,
	},
	InstallVersion: {
		ID:          InstallVersion,
		Title:       "Install Version",
		Description: "Download a Flutter release or channel",
		Mutating:    true,
	},
	RemoveVersion: {
		ID:          RemoveVersion,
		Title:       "Remove Version",
		Description: "Delete an installed version",
		Mutating:    true,
	},
	List: {
		ID:          List,
		Title:       "List Versions",
		Description: "Show installed versions",
	},
	SetGlobal: {
		ID:          SetGlobal,
		Title:       "Set Global Version",
		Description: "Make a version the default outside projects",
		Mutating:    true,
	},
	RenamePackage: {
		ID:          RenamePackage,
		Title:       "Rename Package ID",
		Description: "Change the Android, iOS and pubspec identifiers",
	},
}

// All returns every command in menu order.
func All() []ID {
	return []ID{NewProject, UseVersion, InstallVersion, RemoveVersion, List, SetGlobal, RenamePackage}
}

// Describe returns the Info for id.
func Describe(id ID) (Info, bool) {
	info, ok := registry[id]
	return info, ok
}

// ParseID converts a string to an ID, returning false if it names no command.
func ParseID(s string) (ID, bool) {
	id := ID(s)
	if _, ok := registry[id]; !ok {
		return "", false
	}
	return id, true
}
