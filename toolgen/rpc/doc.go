// Package rpc turns compiled protocol-buffer descriptor sets into tool
// records: one record per service method, with the parameter schema resolved
// from the method's input message type.
package rpc
