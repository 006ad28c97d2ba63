package status

// Message constants
const (
	MsgShort = "Show the manifest's launcher components and icon summary"
	MsgLong  = `The 'status' command parses AndroidManifest.xml and lists the declared
launcher components: the main activity, managed alias blocks, and any
foreign aliases. When a generated icon summary exists it is rendered
below the table.`

	MsgExample = `  # Show the current project's icon state
  iconshift status`
)
