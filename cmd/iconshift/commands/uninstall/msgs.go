package uninstall

// Message constants
const (
	MsgShort = "Remove everything setup added to the project"
	MsgLong  = `The 'uninstall' command reverses 'setup'. The manifest is restored
from its newest backup when one exists; otherwise the managed
activity-alias blocks are stripped in place. Copied icon bitmaps and
the generated summary are deleted. Foreign manifest content is never
touched.`

	MsgExample = `  # Clean up the project in the current directory
  iconshift uninstall

  # Clean up another project
  iconshift uninstall --root ~/src/myapp`
)
