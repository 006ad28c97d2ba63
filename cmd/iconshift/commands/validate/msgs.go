package validate

// Message constants
const (
	MsgShort = "Check the icon configuration without changing anything"
	MsgLong  = `The 'validate' command loads the icon configuration and reports every
problem it finds: empty or invalid identifiers, missing image paths,
image files that do not exist, and a default_icon that names no
configured icon. All issues are reported in one run.`

	MsgExample = `  # Validate the configuration in the current project
  iconshift validate

  # Validate without touching the filesystem
  iconshift validate --skip-file-check`
)
