package command

import (
	"path"
	"strings"
)

type node struct {
	name     string
	dir      bool
	content  string
	children []*node
}

func dirNode(name string, children ...*node) *node {
	return &node{name: name, dir: true, children: children}
}

func fileNode(name, content string) *node {
	return &node{name: name, content: content}
}

func (n *node) child(name string) *node {
	for _, c := range n.children {
		if c.name == name {
			return c
		}
	}
	return nil
}

// entryName is the listing form: directories carry a trailing slash.
func (n *node) entryName() string {
	if n.dir {
		return n.name + "/"
	}
	return n.name
}

// FS is the fixed virtual filesystem rooted at "/" with the portfolio under home.
type FS struct {
	root *node
	home string
}

// NewFS builds the tree with the portfolio content mounted at home.
func NewFS(home string) *FS {
	home = path.Clean("/" + home)
	homeDir := dirNode(path.Base(home),
		dirNode("projects",
			fileNode("commandbridge.md", projectDoc("bridge", commandbridgeDoc)),
			fileNode("mcl.md", projectDoc("rust", mclDoc)),
			fileNode("notenmanager.md", projectDoc("firebase", notenmanagerDoc)),
			fileNode("dots.md", projectDoc("linux", dotsDoc)),
			fileNode("README.md", projectsReadme),
		),
		dirNode("skills",
			fileNode("languages.txt", languagesText),
			fileNode("frameworks.txt", frameworksText),
			fileNode("tools.txt", toolsText),
		),
		dirNode("contact",
			fileNode("links.txt", linksText),
		),
		fileNode("README.md", readmeText),
	)
	root := dirNode("")
	parent := root
	parts := strings.Split(strings.Trim(path.Dir(home), "/"), "/")
	for _, part := range parts {
		if part == "" {
			continue
		}
		next := dirNode(part)
		parent.children = append(parent.children, next)
		parent = next
	}
	if home == "/" {
		root = homeDir
		root.name = ""
	} else {
		parent.children = append(parent.children, homeDir)
	}
	return &FS{root: root, home: home}
}

// Home returns the absolute home path.
func (fs *FS) Home() string {
	return fs.home
}

// Resolve turns p into a clean absolute path. "~" expands to home and
// relative paths are taken from cwd.
func (fs *FS) Resolve(cwd, p string) string {
	switch {
	case p == "" || p == "~":
		return fs.home
	case strings.HasPrefix(p, "~/"):
		return path.Clean(fs.home + p[1:])
	case path.IsAbs(p):
		return path.Clean(p)
	default:
		if cwd == "" {
			cwd = fs.home
		}
		return path.Clean(cwd + "/" + p)
	}
}

func (fs *FS) lookup(abs string) *node {
	abs = path.Clean(abs)
	if abs == "/" {
		return fs.root
	}
	current := fs.root
	for _, part := range strings.Split(strings.TrimPrefix(abs, "/"), "/") {
		if current == nil || !current.dir {
			return nil
		}
		current = current.child(part)
	}
	return current
}

// IsDir reports whether abs names a directory.
func (fs *FS) IsDir(abs string) bool {
	n := fs.lookup(abs)
	return n != nil && n.dir
}

// List returns the entries of the directory at abs in listing order.
func (fs *FS) List(abs string) ([]string, bool) {
	n := fs.lookup(abs)
	if n == nil {
		return nil, false
	}
	if !n.dir {
		return []string{n.name}, true
	}
	out := make([]string, 0, len(n.children))
	for _, c := range n.children {
		out = append(out, c.entryName())
	}
	return out, true
}

// ReadFile returns file content. isDir is set when abs names a directory.
func (fs *FS) ReadFile(abs string) (content string, found bool, isDir bool) {
	n := fs.lookup(abs)
	if n == nil {
		return "", false, false
	}
	if n.dir {
		return "", true, true
	}
	return n.content, true, false
}
