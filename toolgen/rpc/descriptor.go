package rpc

import (
	"context"

	"github.com/viant/afs"
	"github.com/viant/mcp-toolgen/toolgen/tool"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"
)

// Loader reads serialized FileDescriptorSet blobs (protoc --descriptor_set_out).
type Loader struct {
	fs afs.Service
}

// NewLoader returns a loader with a default file service.
func NewLoader() *Loader {
	return &Loader{fs: afs.New()}
}

// Load reads and decodes a descriptor-set file.
func (l *Loader) Load(ctx context.Context, location string) (*descriptorpb.FileDescriptorSet, error) {
	data, err := l.fs.DownloadWithURL(ctx, location)
	if err != nil {
		return nil, tool.NewLoadError(err, "failed to read descriptor set %q", location)
	}
	var set descriptorpb.FileDescriptorSet
	if err := proto.Unmarshal(data, &set); err != nil {
		return nil, tool.NewLoadError(err, "failed to parse descriptor set %q", location)
	}
	return &set, nil
}
