/*

Process of compilation

Program Text ->
	lex ->
Tokens (token) ->
	parse ->
Abstract Syntax Tree (ast) ->
	lower (Lowerer) ->
Target Module

Only the front end lives here. Lowering is done by a Lowerer,
Dump is the one provided: it prints the tree back as source text.

*/
package compiler
