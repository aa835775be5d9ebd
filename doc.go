/*

Package swap defines the interfaces shared by every part of the fixed rate
swap engine: storage, transactions, messages, handlers, and the
condition/address scheme used to derive keyless custody authorities.

Look into this package for an overview of the design decisions made around
interfaces and the extension building blocks under x/.

*/

package swap
