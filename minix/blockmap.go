package minix

import "encoding/binary"

// BlockResult is the outcome of mapping a file-relative logical block index
// to an absolute image block. A Hole result means the block is
// sparse and should read as zero-filled without any further dereference.
type BlockResult struct {
	Hole  bool
	Block uint32 // absolute block number; valid only when !Hole
}

// MapBlock resolves file-relative logical block index L against inode,
// traversing direct, single-indirect, and double-indirect zone tables. A
// zone number of 0 at any level short-circuits to Hole without further
// dereferencing; callers cannot distinguish which level produced the hole.
func (s *Session) MapBlock(inode Inode, l uint32) (BlockResult, error) {
	bpz := s.geo.BlocksPerZone
	p := s.geo.PointersPerBlock

	logicalZone := l / bpz
	blockInZone := l % bpz

	var zoneNum uint32
	switch {
	case logicalZone < numDirectZones:
		zoneNum = inode.Zone[logicalZone]

	case logicalZone < numDirectZones+p:
		slot := logicalZone - numDirectZones
		if inode.Indirect == 0 {
			return BlockResult{Hole: true}, nil
		}
		table, err := s.readZoneTable(inode.Indirect)
		if err != nil {
			return BlockResult{}, err
		}
		zoneNum = table[slot]

	case logicalZone < numDirectZones+p+p*p:
		idx := logicalZone - numDirectZones - p
		outerSlot := idx / p
		innerSlot := idx % p
		if inode.TwoIndirect == 0 {
			return BlockResult{Hole: true}, nil
		}
		outer, err := s.readZoneTable(inode.TwoIndirect)
		if err != nil {
			return BlockResult{}, err
		}
		innerZone := outer[outerSlot]
		if innerZone == 0 {
			return BlockResult{Hole: true}, nil
		}
		inner, err := s.readZoneTable(innerZone)
		if err != nil {
			return BlockResult{}, err
		}
		zoneNum = inner[innerSlot]

	default:
		// beyond addressable range
		return BlockResult{Hole: true}, nil
	}

	if zoneNum == 0 {
		return BlockResult{Hole: true}, nil
	}
	return BlockResult{Block: zoneNum*bpz + blockInZone}, nil
}

// readZoneTable reads the first blocksize bytes of an indirect zone into the
// session's reusable scratch buffer and decodes it as an array of little-endian
// uint32 zone numbers. The scratch buffer is safe to reuse here because its
// contents are fully decoded into the returned []uint32 before the caller
// (MapBlock's double-indirect branch) issues the next read against it.
func (s *Session) readZoneTable(zone uint32) ([]uint32, error) {
	buf := s.scratch
	off := int64(zone) * int64(s.geo.ZoneSizeBytes)
	if err := readFull(s.backend, off, buf); err != nil {
		return nil, err
	}
	s.log.WithField("zone", zone).Debug("minix: read indirect table")
	table := make([]uint32, s.geo.PointersPerBlock)
	for i := range table {
		table[i] = binary.LittleEndian.Uint32(buf[i*pointerSize : (i+1)*pointerSize])
	}
	return table, nil
}

// ReadBlock reads the blocksize-byte data block that logical block l of
// inode maps to, or returns (nil, true, nil) for a hole. An I/O error on an
// indirect dereference is a hard error, never a hole. The returned slice
// aliases the session's scratch buffer and is only valid until the next
// call that reads a block through this session (ReadBlock or MapBlock);
// callers consume it (copy it out, write it out) before making another such
// call, per spec.md §5's single-threaded, no-caching resource model.
func (s *Session) ReadBlock(inode Inode, l uint32) (data []byte, hole bool, err error) {
	res, err := s.MapBlock(inode, l)
	if err != nil {
		return nil, false, err
	}
	if res.Hole {
		return nil, true, nil
	}
	buf := s.scratch
	off := int64(res.Block) * int64(s.geo.BlockSize)
	if err := readFull(s.backend, off, buf); err != nil {
		return nil, false, err
	}
	return buf, false, nil
}

