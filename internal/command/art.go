package command

import (
	"fmt"
	"strings"
)

var asciiTopics = []string{"rust", "linux", "hacker", "coffee", "matrix", "bridge", "firebase"}

var asciiArt = map[string]string{
	"bridge": `
╔══════════════════════════════════╗
║  🌉 CommandBridge Network 🌉     ║
║                                  ║
║  [Paper] ←→ [Bridge] ←→ [Velocity] ║
║     ↓         ↓         ↓       ║
║  Player1   Commands   Player2    ║
╚══════════════════════════════════╝
`,
	"rust": `
⚡ RUST POWERED ⚡

██████╗ ██╗   ██╗███████╗████████╗
██╔══██╗██║   ██║██╔════╝╚══██╔══╝
██████╔╝██║   ██║███████╗   ██║
██╔══██╗██║   ██║╚════██║   ██║
██║  ██║╚██████╔╝███████║   ██║
╚═╝  ╚═╝ ╚═════╝ ╚══════╝   ╚═╝

🦀 Fast • Safe • Concurrent 🦀
`,
	"firebase": `
🔥 Firebase Powered 🔥

░░░░░░░░░░░░░░░░░░░░░░░░░░░░░░░░
░  REALTIME DATABASE  ░
░   ┌─────────────┐   ░
░   │ Notenmanager│   ░
░   │     📊      │   ░
░   │   Grades    │   ░
░   └─────────────┘   ░
░░░░░░░░░░░░░░░░░░░░░░░░░░░░░░░░
`,
	"linux": `
🐧 LINUX CONFIGURATION 🐧

 ██╗     ██╗███╗   ██╗██╗   ██╗██╗  ██╗
 ██║     ██║████╗  ██║██║   ██║╚██╗██╔╝
 ██║     ██║██╔██╗ ██║██║   ██║ ╚███╔╝
 ██║     ██║██║╚██╗██║██║   ██║ ██╔██╗
 ███████╗██║██║ ╚████║╚██████╔╝██╔╝ ██╗
 ╚══════╝╚═╝╚═╝  ╚═══╝ ╚═════╝ ╚═╝  ╚═╝

 Hyprland • Dotfiles • Automation
`,
	"hacker": `
░█▀▀█ ░█─░█ ░█▀▀▄ ░█▀▀▀ ░█▀▀█ 　 ░█─░█ ░█▀▀█ ░█▀▀█ ░█─▄▀ ░█▀▀▀ ░█▀▀█
░█─── ░█▄▄█ ░█▀▀▄ ░█▀▀▀ ░█▄▄▀ 　 ░█▀▀█ ░█▄▄█ ░█─── ░█▀▄─ ░█▀▀▀ ░█▄▄▀
░█▄▄█ ─▀─▀─ ░█▄▄▀ ░█▄▄▄ ░█─░█ 　 ░█─░█ ░█─░█ ░█▄▄█ ░█─░█ ░█▄▄▄ ░█─░█

[ACCESSING MAINFRAME...] ████████████ 100%
[BYPASSING FIREWALL...]  ██████████░░  83%
[DECRYPTING DATA...]     ████████░░░░  67%

> Just kidding! This is just ASCII art :)
`,
	"coffee": `
☕ COFFEE.EXE LOADING ☕

 (  )   (   )  )
  ) (   )  (  (
  ( )  (    ) )
  _____________
 <_____________> ___
 |             |/ _ \
 |      ☕      | | |
 |               |_| |
___|_______________|___|___
|_______________________|

Caffeine levels: ████████████ 100%
Productivity boost: +42%
`,
	"matrix": `
░░▒▒▓▓██ THE MATRIX ██▓▓▒▒░░

01001000 01100101 01101100 01101100 01101111
░█▀▀█ ░█▀▀█ ░█▀▀█ ▀▀█▀▀ ░█▀▀▀ ░█▀▀█ ░█─── ▀█▀ ░█▀▀█
░█▄▄█ ░█▄▄█ ░█▄▄▀ ─░█── ░█▀▀▀ ░█▄▄█ ░█─── ░█─ ░█▄▄█
░█─── ░█─░█ ░█─░█ ─░█── ░█─── ░█─░█ ░█▄▄█ ▄█▄ ░█─░█
01010111 01101111 01110010 01101100 01100100

> Wake up, developer... The portfolio has you.
`,
}

const matrixEffect = `
░░▒▒▓▓██ ENTERING THE MATRIX ██▓▓▒▒░░

01001000 01100101 01101100 01101100 01101111

░█▀▀█ ░█▀▀█ ░█▀▀█ ▀▀█▀▀ ░█▀▀▀ ░█▀▀█ ░█─── ▀█▀ ░█▀▀█
░█▄▄█ ░█▄▄█ ░█▄▄▀ ─░█── ░█▀▀▀ ░█▄▄█ ░█─── ░█─ ░█▄▄█
░█─── ░█─░█ ░█─░█ ─░█── ░█─── ░█─░█ ░█▄▄█ ▄█▄ ░█─░█

01010111 01101111 01110010 01101100 01100100

> Wake up, developer... The portfolio has you.
> There is no spoon... only code.
> Follow the white rabbit (🐰) to ~/projects

Matrix connection established.
Red pill or blue pill? Type 'help' to choose.`

const userCard = `
  ___  ___ ___  ____
 / _ \| _ ) _ \|_  /
| (_) | _ \   / / /
 \___/|___/_|_\/___|

    [ objz@portfolio ]

    "Code is poetry in motion"`

// asciiFor returns the art for topic or the usage text.
func asciiFor(args []string) string {
	topics := strings.Join(asciiTopics, ", ")
	if len(args) == 0 {
		return "Usage: ascii <topic>\nAvailable topics: " + topics
	}
	art, ok := asciiArt[args[0]]
	if !ok {
		return fmt.Sprintf("ASCII art for '%s' not found. Try: %s", args[0], topics)
	}
	return art
}
