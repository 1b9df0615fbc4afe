package command

import "strings"

const helpText = `Available commands:

NAVIGATION:
  ls [path]           - List directory contents
  cd [path]           - Change directory
  cat <file>          - Display file contents
  pwd                 - Show current directory

SYSTEM:
  whoami              - Display current user
  uptime              - Show system uptime
  top                 - Display running processes
  ps                  - Show process list
  history             - Show command history
  clear               - Clear the terminal
  neofetch            - System information
  date                - Show current date
  exit                - Close the session

PORTFOLIO:
  ascii <topic>       - Display ASCII art
  matrix              - Enter the matrix

NETWORK:
  telnet <host>       - Connect to host
  nc <host> <port>    - Netcat connection

EASTER EGGS:
  sudo rm -rf /       - Don't try this at home!
  make coffee         - Brew some coffee
  hack                - Initiate hacking sequence
  echo <text>         - Display text (try echo $USER)

Type any command to get started!`

const whoamiText = `objz (Object-Oriented Developer)
Software Engineer & System Architect
Currently based in Germany

Specializing in: Rust, Java, TypeScript, System Design
Working on: CommandBridge, MCL, Portfolio projects

"Code is like humor. When you have to explain it, it's bad." - Cory House`

const dateText = "Mon May 27 13:28:47 UTC 2025"

const uptimeText = "Portfolio uptime: 17 days, 13:28, load average: 0.42, 0.13, 0.37"

const topText = `  PID USER      %CPU  %MEM  COMMAND
 1337 objz      12.3   4.2  ./portfolio_server
 1338 objz       8.7   2.1  ./command_processor
 1339 objz       5.4   1.8  ./ascii_engine
 1340 objz       3.2   0.9  ./animation_handler
 1341 objz       0.5   0.3  ./project_showcase
 1342 objz       0.1   0.1  ./coffee_maker`

const psText = `  PID TTY          TIME CMD
 1337 pts/0    00:00:42 portfolio
 1338 pts/0    00:00:21 wasm-runtime
 1339 pts/0    00:00:18 terminal-emu
 1340 pts/0    00:00:12 animation-sys
 1341 pts/0    00:00:05 ascii-render`

// The logo uses backticks, so it cannot be a raw string.
var neofetchText = strings.Join([]string{
	"                   -`                    objz@portfolio",
	"                  .o+`                   -----------------",
	"                 `ooo/                   OS: Portfolio Linux x86_64",
	"                `+oooo:                  Host: GitHub Pages",
	"               `+oooooo:                 Kernel: WASM 6.6.6-portfolio",
	"               -+oooooo+:                Uptime: 17 days, 13 hours, 28 mins",
	"             `/:-:++oooo+:               Packages: 42 (rust), 13 (npm)",
	"            `/++++/+++++++:              Shell: portfolio-shell 3.0.0",
	"           `/++++++++++++++:             Resolution: 1920x1080",
	"          `/+++ooooooooo++++/            WM: Terminal Emulator",
	"         ./ooosssso++osssssso+`          Theme: Matrix-Dark",
	"        .oossssso-````/ossssss+`         Icons: ASCII Art Pack",
	"       -osssssso.      :ssssssso.        Terminal: portfolio-term",
	"      :osssssss/        +sssso+++.",
	"     /ossssssss/        +ssssooo/-       Memory: 521MiB / ∞GiB",
	"   `/ossssso+/:-        -:/+osssso+-",
	"  `+sso+:-`                 `.-/+oso:",
	" `++:.                           `-/+/",
	" .`                                 `/",
}, "\n")

const sudoDenied = "[sudo] password for objz: \n\nSorry, try again.\n[sudo] password for objz: \n\nSudo access denied for portfolio demo."

const coffeeText = `
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

ERROR 418: I'm a teapot

The requested entity body is short and stout.
Tip me over and pour me out.

RFC 2324 - Hyper Text Coffee Pot Control Protocol
`

const makeFailed = "make: *** No targets specified and no makefile found. Stop."

const hackText = `Initializing hacking sequence...

[████████████████████████████████] 100%

⚠️  WARNING: Hacking detected! ⚠️

Just kidding! This is a portfolio website.
Try exploring with commands like:
- ls ~/projects
- cat ~/projects/commandbridge.md
- ascii matrix
- make coffee

No actual hacking happening here! 😄`

const telnetSession = `Trying 127.0.0.1...
Connected to localhost.
Escape character is '^]'.

░░░░░░░░░░░░░░░░░░░░░░░░░░░░░░░░░░░░░
░  SECURE TERMINAL ACCESS GRANTED  ░
░░░░░░░░░░░░░░░░░░░░░░░░░░░░░░░░░░░░░

You are now connected to the portfolio mainframe.
Type 'exit' to disconnect.

mainframe> Welcome to the objz portfolio system
mainframe> All activities are monitored
mainframe> Have a nice day :)

Connection closed by foreign host.`

const hackerBanner = `Connection established to hacker.net:1337

    ██╗  ██╗ █████╗  ██████╗██╗  ██╗███████╗██████╗
    ██║  ██║██╔══██╗██╔════╝██║ ██╔╝██╔════╝██╔══██╗
    ███████║███████║██║     █████╔╝ █████╗  ██████╔╝
    ██╔══██║██╔══██║██║     ██╔═██╗ ██╔══╝  ██╔══██╗
    ██║  ██║██║  ██║╚██████╗██║  ██╗███████╗██║  ██║
    ╚═╝  ╚═╝╚═╝  ╚═╝ ╚═════╝╚═╝  ╚═╝╚══════╝╚═╝  ╚═╝

    Welcome to the hacker matrix...
    Access level: GUEST
    Available exploits: 0

    > This is just a portfolio demo!
    > No actual hacking here :)

Connection terminated.`

var readmeText = strings.Join([]string{
	"# objz's Portfolio Terminal",
	"",
	"Welcome to my interactive portfolio! This terminal simulates a Linux environment",
	"where you can explore my projects and skills.",
	"",
	"## Quick Navigation:",
	"- `ls ~/projects` - View my projects",
	"- `cat ~/projects/<project>.md` - Read project details",
	"- `whoami` - Learn about me",
	"- `help` - See all commands",
	"",
	"Enjoy exploring!",
}, "\n")

const projectsReadme = `# Projects

- commandbridge.md  Cross-server command bridge for Paper and Velocity
- mcl.md            Minecraft CLI launcher written in Rust
- notenmanager.md   Firebase-powered grade tracking
- dots.md           Hyprland dotfiles

Run cat on any of them for details.`

const commandbridgeDoc = `# CommandBridge
A powerful bridge system between Paper and Velocity Minecraft servers.

## Features:
- Cross-server command execution
- Permission synchronization
- Real-time player communication
- Plugin API for extensions

## Tech Stack: Java, Paper API, Velocity API
## Status: Active Development
## GitHub: https://github.com/objz/commandbridge

"The bridge between worlds of Minecraft servers."`

const mclDoc = `# mcl - Minecraft CLI Launcher
A fast, efficient Minecraft launcher written in Rust.

## Features:
- Lightning-fast startup
- Multiple profile management
- Mod support
- Cross-platform compatibility

## Tech Stack: Rust, Tokio, CLI
## Status: Beta
## GitHub: https://github.com/objz/mcl

"Because launching Minecraft should be as fast as Rust."`

const notenmanagerDoc = `# Notenmanager
Firebase-powered school grade tracking application.

## Features:
- Real-time grade synchronization
- Statistical analysis
- Multi-user support
- Offline capabilities

## Tech Stack: Firebase, JavaScript, PWA
## Status: Production
## Use Case: Academic grade management

"Keeping track of academic success, one grade at a time."`

const dotsDoc = `# dots - Hyprland Dotfiles
Automated dotfiles setup for Hyprland window manager.

## Features:
- One-command installation
- Hyprland configuration
- Custom theming
- Backup system

## Tech Stack: Shell, Hyprland, Linux
## Status: Maintained
## GitHub: https://github.com/objz/dots

"Making Linux beautiful, one config at a time."`

const languagesText = `Rust        ██████████░░  expert
Java        ██████████░░  expert
TypeScript  ████████░░░░  advanced
JavaScript  ████████░░░░  advanced
Shell       ██████░░░░░░  intermediate`

const frameworksText = `Paper API / Velocity API   Minecraft server plugins
Tokio                      async Rust runtime
Firebase                   realtime database and hosting
WebAssembly                this terminal`

const toolsText = `Hyprland, Neovim, Git, Docker, Cargo, Gradle`

const linksText = `GitHub:  https://github.com/objz
Portfolio: you are already here`

// projectDoc prefixes a project page with its art.
func projectDoc(topic, doc string) string {
	return asciiArt[topic] + "\n\n" + doc
}
