/*

Package x contains some standard interfaces implemented by the extensions
under this directory, like Authenticator, as well as some helper functions
shared between them.

When you are creating a new extension, you should generally not have to import
this package, but rather the extensions you build on top of.

*/
package x
