/*
Rpn is a reverse-polish calculator with decimal arithmetic,
memory registers and user-defined operations.

Given arguments, it evaluates them as a single line and prints
the x, y, z and t registers:

	% rpn 3 4 +
	 t: 0.0000
	 z: 0.0000
	 y: 0.0000
	 x: 7.0000
	%
	% # Spaces can usually be left out.
	% rpn 2 3x
	...
	 x: 6.0000

Run with no arguments on a terminal, it reads lines interactively
with line editing and history, showing the registers after each line.
Enter h for help, or q to quit. When standard input is not a
terminal, each line read is evaluated in turn.

With the -acme flag, rpn opens an acme window named /rpn/+stack.
Executing text in the window (with the middle button) evaluates
it; errors are written to /rpn/+Errors.

Settings, memory registers and user-defined operations are saved
in $HOME/.config/rpn (see -dir and -format) or, with -mysql,
in a MySQL database. The optional configuration file
$HOME/.config/rpn/config.yaml can set the same things:

	store:
	  dir: /home/me/.rpn
	  format: yaml
	history_file: /home/me/.rpn_history
	log_level: warning
*/
package main
