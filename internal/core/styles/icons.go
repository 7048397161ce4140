package styles

// Tip: To find icons use https://github.com/loichyan/nerdfix

var (
	IconCheck   = "\uf00c"
	IconCross   = "\uf00d"
	IconWarning = "\uf071"
	IconInfo    = "\uf05a"
	IconUser    = "\uf007"
	IconGoogle  = "\uf1a0"
)
