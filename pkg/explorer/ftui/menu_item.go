package ftui

// MenuItem is a status bar entry. HotKeys[0] doubles as its region ID.
type MenuItem struct {
	Title   string
	HotKeys []string
	Action  func()
}
