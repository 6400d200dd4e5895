package urls

// Project is the source repository
const Project = "https://github.com/muurk/kvpairs"

// Issues is where bugs and feature requests are filed
const Issues = Project + "/issues"

// Preferences documents the preferences file and its keys
const Preferences = Project + "#preferences"
