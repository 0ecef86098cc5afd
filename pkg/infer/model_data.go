package infer

// ModelData is the embedded pretrained RSSI model, exported from the
// training pipeline (6 -> Dense(32, ReLU) -> Dense(16, ReLU) -> Dense(1))
// in the flat blob format Load understands. 3102 bytes.
var ModelData = []byte{
	0x52, 0x53, 0x4e, 0x4d, 0x03, 0x00, 0x03, 0x00, 0x06, 0x00, 0x20, 0x00,
	0x01, 0x00, 0xfb, 0xb2, 0x43, 0xbe, 0xce, 0x60, 0x1b, 0x3e, 0xe0, 0x66,
	0x66, 0xbe, 0x40, 0x72, 0xbb, 0x3d, 0xa2, 0xd9, 0x58, 0xbe, 0x25, 0xc9,
	0xa8, 0xbd, 0x6b, 0xc1, 0xc8, 0x3e, 0xef, 0x1a, 0x83, 0xbd, 0x3d, 0x5a,
	0xc6, 0xbe, 0x2a, 0xfc, 0x49, 0x3e, 0x4c, 0xe5, 0x2a, 0xbe, 0xf1, 0x25,
	0xc1, 0xbe, 0x1f, 0xb6, 0xa9, 0xbe, 0xa3, 0x8e, 0xbf, 0xbe, 0xe6, 0x28,
	0x8a, 0x3e, 0x29, 0xcd, 0x26, 0x3e, 0x50, 0x7b, 0x10, 0x3e, 0x33, 0xae,
	0xbe, 0x3e, 0xbe, 0x6a, 0xd0, 0xbd, 0x99, 0xd1, 0xab, 0x3e, 0xe9, 0x4f,
	0x55, 0xbd, 0x26, 0xf4, 0x5d, 0x3e, 0x52, 0x67, 0xa1, 0x3c, 0x26, 0x9b,
	0xae, 0xbe, 0x48, 0x0f, 0xc0, 0x3e, 0x43, 0x46, 0xa9, 0xbe, 0x6f, 0x70,
	0x9f, 0x3e, 0x58, 0xc5, 0xfe, 0x3c, 0xad, 0xe2, 0x9c, 0xbe, 0xfd, 0x98,
	0xbf, 0xbe, 0x98, 0x4a, 0xb2, 0x3c, 0x7d, 0x54, 0x03, 0xbe, 0x9a, 0x6b,
	0x98, 0x3e, 0x05, 0xa9, 0x01, 0xba, 0x75, 0xec, 0x46, 0x3e, 0x47, 0x8e,
	0x88, 0x3e, 0xfb, 0xc1, 0xb1, 0x3c, 0x2d, 0xa4, 0xca, 0xbe, 0x12, 0x73,
	0x1a, 0x3e, 0x8b, 0x06, 0xa0, 0xbd, 0x07, 0x7f, 0x6a, 0x3e, 0xf6, 0xa2,
	0x42, 0x3b, 0xdf, 0x6e, 0x2b, 0xbc, 0xbe, 0xcc, 0x49, 0x3d, 0xfd, 0x45,
	0x8d, 0xbc, 0xe8, 0xa5, 0x09, 0x3d, 0x2e, 0x2e, 0xf8, 0x3d, 0xd9, 0xd4,
	0xc9, 0xbe, 0xbc, 0xd1, 0x1d, 0x3e, 0xe5, 0x32, 0x0d, 0x3e, 0x54, 0x71,
	0x1e, 0xbe, 0xc0, 0xb4, 0xaa, 0xbe, 0xe8, 0x8d, 0xed, 0x3c, 0x77, 0x34,
	0xc0, 0xbe, 0x4e, 0x2c, 0x91, 0xbe, 0xba, 0x8d, 0xb1, 0xbe, 0x8e, 0xa8,
	0x9c, 0xbe, 0x23, 0x06, 0x38, 0x3e, 0xc2, 0xd9, 0x09, 0x3e, 0x30, 0x3b,
	0xb8, 0xbd, 0x58, 0x19, 0x69, 0x3e, 0x36, 0x16, 0x37, 0x3e, 0x15, 0xfb,
	0x95, 0xbe, 0xc0, 0x79, 0x88, 0xbd, 0xe8, 0x39, 0x12, 0xbe, 0xa8, 0xe0,
	0x7c, 0x3e, 0xe7, 0x60, 0x68, 0x3b, 0x63, 0x7d, 0xa1, 0xbe, 0x9b, 0xf6,
	0xf1, 0xbd, 0xc8, 0x61, 0xc1, 0xbe, 0x4c, 0x44, 0x9e, 0x3d, 0x15, 0xc6,
	0x00, 0xbc, 0x01, 0x03, 0xc9, 0xbe, 0x33, 0x8c, 0xc1, 0x3e, 0x72, 0x03,
	0xa3, 0x3e, 0x79, 0x41, 0xd1, 0x3c, 0x8b, 0xa6, 0x86, 0x3e, 0x35, 0x7c,
	0xad, 0xbc, 0xb4, 0x03, 0xa1, 0x3e, 0x46, 0x37, 0x85, 0xbe, 0xd2, 0x61,
	0xd5, 0x3c, 0x44, 0x80, 0x36, 0xbd, 0xf6, 0xb3, 0x18, 0x3e, 0x61, 0xcb,
	0x1c, 0x3e, 0xb8, 0xc4, 0xaf, 0x3e, 0x66, 0x3f, 0xb5, 0x3e, 0xf1, 0x0a,
	0x98, 0xbe, 0xdc, 0x92, 0x38, 0xbc, 0x3d, 0x13, 0x3e, 0x3e, 0xc4, 0x9c,
	0xad, 0xbc, 0x18, 0xd4, 0x47, 0xbd, 0xa0, 0xd5, 0xb2, 0x3e, 0xc9, 0x2e,
	0x84, 0xbe, 0x36, 0x05, 0xe0, 0x3d, 0x4b, 0xe1, 0xc8, 0x3e, 0x06, 0x69,
	0x8b, 0xbe, 0x01, 0xdb, 0xba, 0x3e, 0xfb, 0x5f, 0x52, 0x3e, 0x94, 0xed,
	0xae, 0x3e, 0x39, 0x4a, 0xd8, 0x3d, 0xad, 0xbf, 0x80, 0xbe, 0xbd, 0x25,
	0x87, 0xbe, 0xdb, 0x68, 0xfe, 0xbd, 0x93, 0x6c, 0x22, 0x3e, 0x0b, 0xf4,
	0x7c, 0xbe, 0x39, 0xa2, 0x5c, 0x3e, 0x87, 0x4e, 0x2f, 0x3e, 0x65, 0x79,
	0x7c, 0x3d, 0xb1, 0x32, 0x40, 0x3c, 0xa5, 0xc8, 0x8f, 0xbe, 0x2c, 0xde,
	0x6d, 0x3e, 0xb4, 0x42, 0x8f, 0x3e, 0x7a, 0x3c, 0x68, 0x3d, 0xdf, 0x71,
	0x0e, 0x3d, 0x59, 0x86, 0xe6, 0xbd, 0x50, 0xc4, 0xb3, 0xbe, 0x3f, 0x43,
	0x98, 0xbe, 0xa2, 0x33, 0x9b, 0xbd, 0x12, 0x94, 0x32, 0x3e, 0x0f, 0x4a,
	0x83, 0xbd, 0xfd, 0x70, 0x85, 0xbd, 0x19, 0x37, 0xad, 0xbe, 0x82, 0xd7,
	0x6e, 0x3d, 0xab, 0x37, 0xac, 0x3e, 0x2f, 0x77, 0xb1, 0xbe, 0xae, 0x3f,
	0x05, 0x3e, 0xd2, 0x5c, 0x81, 0xbe, 0x32, 0x7d, 0xf1, 0xbd, 0xca, 0x65,
	0x40, 0x3e, 0x77, 0x8e, 0xc4, 0x3d, 0x3d, 0x14, 0x24, 0xbe, 0x46, 0xd6,
	0x37, 0xbe, 0x65, 0x62, 0x92, 0xbd, 0x82, 0xc1, 0x37, 0x3d, 0x13, 0x18,
	0xc8, 0xbe, 0x84, 0x97, 0xb3, 0x3d, 0x9a, 0xfc, 0x9d, 0x3e, 0x28, 0x94,
	0xbc, 0x3e, 0x78, 0x2c, 0x9e, 0xbd, 0x78, 0x6f, 0x1a, 0xbe, 0xdf, 0xd3,
	0xe9, 0xbc, 0x35, 0x20, 0x25, 0xbe, 0x02, 0x0f, 0x73, 0x3e, 0xce, 0x56,
	0x50, 0xbe, 0x8d, 0xbd, 0x14, 0xbe, 0x0d, 0xa6, 0x6f, 0x3e, 0x58, 0x7e,
	0xa2, 0xbe, 0xa4, 0xa3, 0x10, 0xbe, 0xda, 0xab, 0xa3, 0xbe, 0x75, 0xae,
	0xa0, 0xbd, 0xfe, 0x17, 0x26, 0x3e, 0x48, 0x02, 0x3f, 0x3e, 0x95, 0x86,
	0xa3, 0xbe, 0x53, 0x86, 0xf5, 0x3d, 0x2f, 0x9a, 0x3b, 0x3e, 0xc5, 0xee,
	0xb2, 0x3e, 0x28, 0x10, 0x8e, 0xbe, 0x56, 0xe3, 0x83, 0xbe, 0x53, 0x62,
	0xbc, 0x3d, 0xb3, 0xf6, 0x8d, 0xbe, 0xd3, 0xba, 0x90, 0xbe, 0x84, 0xe5,
	0x69, 0x3e, 0xd3, 0x27, 0x87, 0x3e, 0xc3, 0x42, 0x13, 0x3e, 0x9e, 0x08,
	0x57, 0xbd, 0x8e, 0x64, 0xa9, 0xbe, 0xa4, 0x2b, 0xd7, 0xbd, 0xb3, 0xb2,
	0x89, 0x3e, 0xdd, 0xef, 0xb6, 0x3e, 0xb5, 0xe9, 0x8c, 0x3e, 0x4c, 0xf4,
	0x70, 0xbe, 0xb1, 0xa6, 0x6d, 0x3d, 0xbe, 0x2b, 0x42, 0xbe, 0xd8, 0x66,
	0x87, 0x3e, 0xaa, 0x88, 0x09, 0xbd, 0x37, 0x65, 0x69, 0x3e, 0x52, 0x86,
	0xb3, 0x3e, 0xd2, 0xf6, 0x20, 0x3e, 0xe1, 0xba, 0x2e, 0xbe, 0xfc, 0xae,
	0x0f, 0xbe, 0xc6, 0xdd, 0x88, 0x3c, 0x5c, 0xdd, 0xc7, 0x3e, 0x80, 0xc8,
	0x05, 0x3e, 0x87, 0xa4, 0xa6, 0xbe, 0x88, 0x9d, 0xa0, 0xbe, 0x02, 0xcd,
	0xb7, 0x3e, 0xe8, 0xc0, 0x61, 0x3d, 0x41, 0xba, 0xb6, 0x3e, 0xb8, 0x69,
	0xfa, 0x3d, 0x0c, 0xca, 0x61, 0x3d, 0xe8, 0x74, 0xdf, 0xbd, 0x58, 0x90,
	0x38, 0x3e, 0x7a, 0x45, 0xd7, 0x3c, 0x8d, 0xc8, 0x28, 0xbb, 0xa2, 0x2c,
	0xa9, 0xbc, 0x06, 0x37, 0x43, 0x3d, 0xf0, 0xd8, 0xf7, 0xbc, 0x98, 0xe4,
	0xf7, 0x3c, 0x7a, 0xda, 0x03, 0xbd, 0x15, 0xcd, 0x09, 0x3d, 0xdc, 0x23,
	0x39, 0x3d, 0x08, 0xec, 0x91, 0xbc, 0x97, 0x01, 0x21, 0x3d, 0xd2, 0xa4,
	0xc3, 0xbc, 0x6f, 0x35, 0x1d, 0xbc, 0xdf, 0x13, 0xe6, 0xbb, 0x23, 0x36,
	0x2d, 0x3d, 0xdf, 0x5f, 0x47, 0x3d, 0xaf, 0xbd, 0x76, 0xbc, 0xa4, 0x78,
	0x68, 0x3c, 0x8c, 0x01, 0xee, 0x3c, 0x11, 0xd7, 0x62, 0xbb, 0x87, 0x5e,
	0xd8, 0xbc, 0x43, 0x2a, 0x2f, 0x3d, 0x30, 0x29, 0xff, 0xbc, 0xab, 0x53,
	0x82, 0x3c, 0xaa, 0x42, 0xae, 0xbb, 0x2f, 0x18, 0x65, 0xbc, 0x38, 0x6c,
	0x4b, 0xbb, 0x5a, 0x0d, 0x1f, 0x3c, 0x2b, 0xf1, 0x50, 0xb6, 0x26, 0xf3,
	0xad, 0x3c, 0x0e, 0x68, 0x6b, 0xbc, 0x54, 0x81, 0x76, 0xbc, 0x20, 0x00,
	0x10, 0x00, 0x01, 0x00, 0x2c, 0x3f, 0xec, 0xbd, 0x09, 0x11, 0x07, 0x3e,
	0xaa, 0x26, 0x41, 0x3e, 0x77, 0x56, 0x3e, 0xbe, 0xde, 0xc5, 0xa8, 0xbe,
	0xea, 0xd8, 0x80, 0x3e, 0xf5, 0x70, 0xae, 0xbe, 0xbc, 0xca, 0x45, 0x3e,
	0xb4, 0x0d, 0x3c, 0x3e, 0x5e, 0x0d, 0x98, 0x3d, 0xec, 0xe2, 0x94, 0x3e,
	0xae, 0x14, 0x8a, 0x3e, 0x1f, 0x94, 0x8a, 0x3e, 0xed, 0xaf, 0xdf, 0x3d,
	0x1a, 0xcd, 0x7a, 0xbe, 0x42, 0x43, 0xe1, 0x3d, 0x2f, 0xbd, 0x13, 0xbe,
	0xd0, 0x03, 0x8a, 0x3e, 0x03, 0xfd, 0x99, 0xbe, 0x81, 0x62, 0xf1, 0xbd,
	0x5d, 0xaf, 0xac, 0xbe, 0xf2, 0xd8, 0x41, 0x3e, 0x00, 0x29, 0x34, 0xbe,
	0xae, 0x66, 0x91, 0x3d, 0x9d, 0x7f, 0x66, 0x3e, 0xee, 0x9e, 0xf7, 0x3d,
	0x95, 0x04, 0xba, 0xbd, 0x61, 0xa5, 0x54, 0x3e, 0x7b, 0x70, 0x08, 0xbe,
	0x7d, 0xcc, 0x48, 0x3c, 0x3b, 0xc7, 0x12, 0x3e, 0x13, 0x5e, 0xdb, 0xbd,
	0x3d, 0xa5, 0xa4, 0xbe, 0x6e, 0x32, 0xd7, 0x3d, 0x94, 0x9d, 0x6f, 0xbe,
	0xde, 0x1b, 0x90, 0x3e, 0x87, 0xde, 0x27, 0x3e, 0x12, 0xd2, 0x7b, 0x3e,
	0x75, 0x70, 0x66, 0xbe, 0x13, 0x66, 0x7f, 0x3d, 0xe6, 0xb7, 0x90, 0xbe,
	0x98, 0x07, 0xff, 0xbd, 0xe0, 0x3a, 0x3d, 0xbe, 0xdc, 0x2b, 0x9b, 0xbe,
	0x29, 0x4a, 0xb2, 0x3d, 0x68, 0x06, 0xd0, 0xbd, 0x49, 0x31, 0x2e, 0xbd,
	0xa4, 0x91, 0x2a, 0x3d, 0xfc, 0xa4, 0x4b, 0xbe, 0xcc, 0x7e, 0xc8, 0xbd,
	0x3c, 0x2a, 0x40, 0xbd, 0x7a, 0x2d, 0xb3, 0xbe, 0x41, 0xf7, 0x10, 0xbe,
	0x69, 0x19, 0x06, 0xbd, 0xcc, 0xbe, 0x64, 0x3e, 0x38, 0x29, 0xeb, 0x3c,
	0x16, 0xda, 0x2b, 0xbd, 0x1f, 0x1b, 0xa2, 0xbe, 0xd3, 0x58, 0xa8, 0x3e,
	0x71, 0x01, 0x86, 0xbe, 0x56, 0xc9, 0x9e, 0x3e, 0xf7, 0xbf, 0x72, 0xbd,
	0xe4, 0xe4, 0xa3, 0x3e, 0xb8, 0xfc, 0x17, 0x3e, 0x03, 0x31, 0x7b, 0xbe,
	0x2d, 0xf9, 0xa8, 0xbe, 0x0f, 0x65, 0x68, 0x3e, 0x73, 0xce, 0x82, 0xbe,
	0xdd, 0x94, 0x36, 0xbe, 0x00, 0x9a, 0x1f, 0xbe, 0xd7, 0x4f, 0x2a, 0x3c,
	0x2a, 0x69, 0x66, 0xbe, 0x6f, 0x62, 0x88, 0xbe, 0x9e, 0xa3, 0xcc, 0x3d,
	0x64, 0xea, 0x45, 0xbd, 0xac, 0xf0, 0x61, 0x3c, 0x6e, 0x4b, 0x02, 0x3e,
	0x46, 0x3b, 0x39, 0xbe, 0xcd, 0x99, 0xed, 0xbc, 0x90, 0xf8, 0x55, 0xbe,
	0xa0, 0xa8, 0x93, 0x3e, 0x88, 0xe8, 0x56, 0xbe, 0xb9, 0xb4, 0xaa, 0x3e,
	0x33, 0x18, 0x2c, 0xbd, 0xf6, 0x42, 0x17, 0x3e, 0x82, 0xe6, 0x7f, 0x3e,
	0x22, 0xf9, 0x1e, 0xbe, 0x81, 0x75, 0x86, 0xbe, 0x30, 0xfb, 0x0b, 0xbe,
	0x58, 0xe4, 0xd2, 0x3d, 0xd0, 0xca, 0x73, 0x3d, 0xa9, 0xa4, 0xb4, 0xbd,
	0x1f, 0x98, 0xcb, 0x3d, 0x9c, 0x3d, 0x62, 0xbe, 0x29, 0xb2, 0xe9, 0x3d,
	0x24, 0xa1, 0x2a, 0x3d, 0xf8, 0x25, 0x01, 0x3e, 0xc2, 0x10, 0x1e, 0xbe,
	0xc5, 0xdb, 0xb2, 0xbe, 0x09, 0x17, 0x06, 0xbd, 0xab, 0x3d, 0x96, 0x3e,
	0x66, 0x90, 0xb4, 0xbe, 0x64, 0xa0, 0x9d, 0x3e, 0x4b, 0x5b, 0x76, 0x3d,
	0x60, 0xf0, 0x51, 0x3e, 0xf5, 0x12, 0xef, 0x3c, 0xc2, 0x3b, 0x12, 0x3e,
	0xe8, 0x2f, 0xa3, 0x3a, 0xf7, 0xe7, 0xae, 0xbe, 0x04, 0x20, 0xda, 0x3b,
	0x9e, 0xb8, 0x85, 0xbe, 0x74, 0x27, 0x94, 0x3d, 0x79, 0xe9, 0x27, 0x3e,
	0x0d, 0x7b, 0x3b, 0xbe, 0xb8, 0x2c, 0x71, 0x3e, 0xda, 0x37, 0xd3, 0xbd,
	0x88, 0xfa, 0x53, 0x3d, 0x6d, 0x23, 0xb0, 0x3e, 0x20, 0xff, 0xab, 0xbd,
	0xe4, 0xa4, 0x4d, 0xbe, 0x4e, 0x4c, 0x44, 0x3e, 0xa2, 0x83, 0x59, 0xbe,
	0x16, 0x8b, 0x2b, 0xbe, 0x26, 0x7c, 0x78, 0x3b, 0x88, 0x37, 0xbe, 0xbc,
	0x57, 0x6c, 0x93, 0x3e, 0xe8, 0xf4, 0xb7, 0x3c, 0x85, 0x37, 0x7a, 0x3e,
	0x4d, 0x18, 0x96, 0xbd, 0x5a, 0xf5, 0xaf, 0x3e, 0x46, 0x92, 0x7e, 0x3e,
	0x0e, 0xf7, 0x7f, 0x3e, 0xbd, 0x0a, 0x87, 0x3e, 0xd9, 0x1b, 0xd6, 0x3c,
	0x9c, 0x90, 0x5d, 0xbe, 0x2d, 0x86, 0x2a, 0xbe, 0x59, 0xbf, 0x06, 0xbd,
	0xd2, 0xeb, 0xb0, 0xbe, 0x68, 0x3d, 0x19, 0x3e, 0xa3, 0xe5, 0x19, 0x3e,
	0x4e, 0x0f, 0x7e, 0x3e, 0xa5, 0xf0, 0x48, 0xbe, 0x36, 0xb3, 0xb2, 0xbe,
	0xf9, 0x71, 0x85, 0xbe, 0xbb, 0xd5, 0x23, 0xbe, 0x99, 0xe5, 0xc4, 0x3d,
	0xdd, 0xfd, 0xbf, 0x3d, 0x6c, 0xff, 0x5c, 0x3e, 0xe8, 0x5b, 0x07, 0xbe,
	0xac, 0x65, 0x42, 0x3e, 0xd8, 0xff, 0x16, 0xbe, 0x28, 0x12, 0x71, 0x3e,
	0x14, 0xe8, 0xae, 0x3e, 0x17, 0xbe, 0x9f, 0xbe, 0x2d, 0x90, 0xe8, 0x3b,
	0x32, 0x24, 0x71, 0x3e, 0x12, 0xb3, 0x0e, 0x3c, 0xf4, 0x9f, 0xf2, 0xbd,
	0x84, 0x0f, 0x70, 0x3d, 0x8b, 0xfd, 0xaf, 0x3d, 0x83, 0xe2, 0xae, 0x3e,
	0xe3, 0x21, 0xa4, 0xbe, 0xf1, 0x49, 0xc0, 0xbd, 0xfb, 0xb9, 0x3e, 0x3e,
	0x15, 0xc7, 0xaf, 0x3e, 0x11, 0x15, 0x9b, 0x3d, 0x08, 0xb0, 0x61, 0xbe,
	0x29, 0x93, 0x68, 0xbe, 0x8f, 0xcb, 0xb1, 0x3d, 0xc8, 0x37, 0x97, 0xbe,
	0xaa, 0xb0, 0x84, 0xbe, 0x4b, 0xcc, 0x09, 0xbe, 0xc7, 0x43, 0x90, 0xbe,
	0xe2, 0xb8, 0x67, 0x3e, 0x08, 0x3a, 0x26, 0xbe, 0x09, 0xb3, 0x85, 0x3e,
	0x13, 0xc1, 0x13, 0x3e, 0x26, 0x23, 0x9f, 0x3e, 0xc4, 0x79, 0x5f, 0x3e,
	0x2c, 0x47, 0x68, 0xbe, 0xe2, 0x0a, 0xb0, 0x3c, 0x48, 0xe5, 0x69, 0xbe,
	0x7c, 0x94, 0x92, 0x3d, 0x3b, 0x0d, 0x73, 0x3e, 0xad, 0x40, 0x82, 0xbe,
	0x8f, 0x4b, 0x66, 0x3e, 0x3f, 0xba, 0xd0, 0xbd, 0x55, 0x6d, 0x10, 0x3e,
	0xa1, 0x97, 0x67, 0xbe, 0x22, 0x3f, 0xd0, 0x3d, 0x9d, 0x97, 0x99, 0xbc,
	0xf4, 0x18, 0x96, 0xbe, 0xea, 0x95, 0x43, 0x3d, 0xb5, 0x79, 0x13, 0x3e,
	0xa2, 0x49, 0xa7, 0xbd, 0xd4, 0xba, 0x83, 0xbe, 0xbb, 0x4a, 0x92, 0x3c,
	0x97, 0x0b, 0xf7, 0x3d, 0xad, 0xaf, 0xcd, 0x3c, 0x3b, 0x45, 0x38, 0x3e,
	0xb3, 0x48, 0x27, 0xbe, 0x1a, 0x84, 0x90, 0xbe, 0x5a, 0x7a, 0xab, 0xbe,
	0x4d, 0xdd, 0xb9, 0xbd, 0x48, 0x36, 0x6f, 0x3c, 0x53, 0xdb, 0x5e, 0x3e,
	0xb4, 0x6f, 0xe9, 0x3d, 0x00, 0x70, 0x5a, 0xbe, 0x91, 0x10, 0xac, 0xbe,
	0x86, 0x25, 0x58, 0x3c, 0x90, 0x09, 0x9a, 0x3d, 0x19, 0x75, 0x6f, 0xbd,
	0x7d, 0x23, 0x4b, 0x3e, 0x19, 0xce, 0x95, 0xbe, 0xb7, 0xee, 0x28, 0x3d,
	0xc5, 0x12, 0x7c, 0x3e, 0xd4, 0xc3, 0x88, 0x3e, 0x9e, 0x31, 0xd8, 0xbd,
	0xa8, 0x7e, 0xc6, 0xba, 0xc5, 0xee, 0xcb, 0x3d, 0x30, 0x01, 0x79, 0xbe,
	0xde, 0x1a, 0x6e, 0xbd, 0xaa, 0x27, 0x97, 0x3e, 0x7d, 0x4d, 0xb0, 0xbe,
	0x2e, 0xe3, 0xa9, 0xbd, 0x2c, 0x65, 0x3c, 0xbe, 0xc2, 0x41, 0x0d, 0x3e,
	0xd5, 0x22, 0x96, 0x3e, 0x2a, 0x12, 0xc1, 0xbd, 0x85, 0x7b, 0x26, 0xbe,
	0xdb, 0x6f, 0x3d, 0xbe, 0xce, 0x87, 0x00, 0x3e, 0x3e, 0xc5, 0x80, 0xbe,
	0xa0, 0x4a, 0x95, 0xbe, 0x21, 0x49, 0x1a, 0xbe, 0xb8, 0x36, 0x91, 0xbd,
	0xe3, 0x7e, 0xa3, 0xbe, 0xe3, 0x56, 0x85, 0x3e, 0x12, 0x59, 0x36, 0x3e,
	0x80, 0x2c, 0xa5, 0xbe, 0x6b, 0x63, 0x98, 0xbe, 0xf1, 0xd7, 0x24, 0xbd,
	0x93, 0xc7, 0x4a, 0xbc, 0x4b, 0x4b, 0xb9, 0xbd, 0x3b, 0xce, 0xec, 0xbd,
	0x86, 0xa5, 0x35, 0xbe, 0x7e, 0x5d, 0x8c, 0xbe, 0xeb, 0xe5, 0x12, 0xbc,
	0xaa, 0x1b, 0xc2, 0xbc, 0x71, 0xba, 0x47, 0x3e, 0x3c, 0xae, 0x60, 0x3e,
	0x3d, 0x84, 0x74, 0x3c, 0x02, 0x60, 0x99, 0xbe, 0x0d, 0xad, 0xbb, 0xbd,
	0xa2, 0xba, 0xa0, 0x3d, 0x66, 0x70, 0x3f, 0xbe, 0x7f, 0xdb, 0xb0, 0x3e,
	0x5a, 0x62, 0x9a, 0xbe, 0xdc, 0xa4, 0x60, 0x3e, 0xf6, 0x36, 0xef, 0x3d,
	0x7c, 0x95, 0x5a, 0x3e, 0x50, 0x89, 0x1f, 0xbd, 0x1d, 0x38, 0x02, 0xbc,
	0xf5, 0x22, 0x54, 0xbe, 0x3a, 0xfe, 0xa0, 0x3c, 0x8c, 0x55, 0xe2, 0x3d,
	0xf0, 0x2b, 0x56, 0xbe, 0xf4, 0x20, 0x88, 0xbe, 0x78, 0xa7, 0xde, 0xbd,
	0x69, 0xde, 0x0f, 0x3d, 0xf9, 0x66, 0xb4, 0x3e, 0x8b, 0xf5, 0x98, 0xbe,
	0x87, 0xe3, 0x50, 0x3d, 0xe5, 0x8c, 0x23, 0x3e, 0x6a, 0x06, 0x02, 0x3d,
	0xd7, 0xe1, 0x8d, 0x3e, 0xb7, 0xfb, 0x5a, 0x3e, 0xe5, 0x32, 0x1c, 0x3d,
	0xb1, 0x52, 0x4a, 0x3d, 0x24, 0x28, 0x77, 0xbe, 0xc6, 0xd7, 0xbe, 0xbd,
	0xf3, 0x37, 0xe8, 0xbc, 0x14, 0xa9, 0xba, 0xbc, 0xbb, 0xd0, 0xad, 0xbe,
	0x6a, 0xb0, 0x23, 0xbe, 0x09, 0x6e, 0xd6, 0x3d, 0x19, 0x9d, 0xad, 0xbe,
	0xca, 0x12, 0x23, 0x3e, 0x0f, 0x64, 0xba, 0xbd, 0x2e, 0x97, 0x55, 0x3d,
	0x6f, 0x90, 0x82, 0x3e, 0x55, 0x32, 0x13, 0x3e, 0xaa, 0x42, 0xa6, 0x3e,
	0xad, 0x06, 0x73, 0x3d, 0xb8, 0x9b, 0x9d, 0xbd, 0x22, 0xa3, 0x66, 0xbe,
	0x43, 0x18, 0x54, 0xbe, 0x40, 0xfb, 0x88, 0xbe, 0x61, 0xa1, 0x80, 0xbd,
	0x3e, 0xb4, 0x49, 0xbe, 0x52, 0x40, 0x94, 0x3e, 0x00, 0x5e, 0xa3, 0x3e,
	0xb1, 0xa5, 0xf5, 0xbd, 0x7c, 0xb1, 0x54, 0x3e, 0x4b, 0x1d, 0x71, 0x3e,
	0x96, 0x8d, 0xea, 0xbd, 0x7e, 0xee, 0x3b, 0x3e, 0xe1, 0x0b, 0x40, 0xbe,
	0x58, 0x6a, 0x61, 0x3e, 0x8c, 0x61, 0x9e, 0xbe, 0xc5, 0x61, 0x80, 0xbd,
	0x78, 0x68, 0xf6, 0xbd, 0x89, 0x64, 0x24, 0x3e, 0x59, 0x23, 0x49, 0xbe,
	0x98, 0x48, 0xb1, 0x3e, 0x33, 0x45, 0x9b, 0x3e, 0x48, 0xaa, 0xa6, 0x3e,
	0xc3, 0x73, 0xf2, 0x3d, 0x95, 0x0c, 0x1b, 0xbe, 0xfc, 0x53, 0x40, 0x3d,
	0x06, 0x41, 0x57, 0xbd, 0xfe, 0x4c, 0x3c, 0xbe, 0x4f, 0x14, 0x83, 0x3e,
	0xe9, 0xf1, 0x34, 0x3e, 0x66, 0xae, 0x23, 0xbd, 0x9d, 0x3f, 0x41, 0xbe,
	0x50, 0xad, 0xed, 0x3d, 0x2f, 0x88, 0x46, 0xbe, 0xa6, 0x2a, 0x08, 0xbe,
	0x16, 0xa0, 0x8e, 0x3e, 0x69, 0xf2, 0x17, 0xbe, 0xe6, 0xc0, 0x48, 0xbe,
	0x83, 0xe3, 0xe5, 0xbd, 0x2e, 0xe0, 0xff, 0x3b, 0x6e, 0xf7, 0x14, 0x3e,
	0xf6, 0x3f, 0xb2, 0x3d, 0xea, 0x85, 0x0a, 0xbc, 0xc2, 0x8e, 0x62, 0xbe,
	0x9d, 0x1d, 0x7b, 0xbe, 0x6e, 0x94, 0xbe, 0x3c, 0xe2, 0x8d, 0xfe, 0xbd,
	0xe7, 0x22, 0x22, 0xbe, 0xf3, 0x57, 0x9a, 0x3d, 0x2d, 0xe0, 0x7b, 0x3e,
	0xe3, 0xd4, 0xab, 0xbe, 0x86, 0xd8, 0x2a, 0x3e, 0xe9, 0x33, 0x05, 0x3e,
	0x1c, 0x47, 0xa4, 0x3e, 0x23, 0xab, 0xd1, 0xbd, 0x68, 0x3b, 0x6f, 0xbc,
	0xe4, 0x9d, 0xac, 0xbc, 0x1e, 0xb0, 0x42, 0x3e, 0xf8, 0xcd, 0x14, 0x3e,
	0x11, 0xd1, 0xb2, 0x3e, 0xd7, 0xd2, 0x7e, 0x3e, 0xfd, 0x2c, 0xd9, 0x3c,
	0x97, 0x94, 0x4d, 0x3e, 0x12, 0xb7, 0x8b, 0xbe, 0x0c, 0x42, 0xde, 0xbd,
	0xc6, 0xed, 0x0f, 0x3e, 0x0a, 0x1d, 0x74, 0xbe, 0x1a, 0x13, 0x3c, 0x3e,
	0x44, 0x09, 0xd9, 0x3d, 0x80, 0xb1, 0x4e, 0xbe, 0xc3, 0x67, 0x52, 0xbe,
	0xf0, 0xc8, 0xb1, 0x3e, 0xfd, 0xd9, 0xbc, 0x3d, 0x0f, 0x49, 0x46, 0xbe,
	0xce, 0xa4, 0x59, 0xbd, 0x40, 0xa0, 0x44, 0x3e, 0x05, 0xcc, 0x9e, 0x3e,
	0x66, 0x2a, 0xb3, 0x3c, 0x14, 0x30, 0xb4, 0xbe, 0xef, 0xa1, 0x31, 0xbe,
	0x86, 0xa1, 0x94, 0xbd, 0xfa, 0x93, 0x40, 0x3d, 0x37, 0x13, 0x42, 0xbe,
	0xb6, 0x44, 0xaf, 0x3e, 0x55, 0x15, 0xa8, 0xbe, 0x2d, 0x5c, 0xc1, 0xbd,
	0xff, 0x3b, 0xa6, 0x3c, 0x62, 0x6b, 0xa3, 0xbe, 0x96, 0x25, 0xaa, 0xbd,
	0xe1, 0x5e, 0x9e, 0xbe, 0xd9, 0xf5, 0x84, 0x3e, 0x14, 0x34, 0x9b, 0xbe,
	0x6e, 0x55, 0x0f, 0x3e, 0xfc, 0x5b, 0x59, 0xbe, 0x9f, 0x5d, 0x77, 0xbe,
	0xb5, 0x32, 0xe9, 0xbd, 0x0f, 0x54, 0x53, 0xbe, 0x11, 0xb5, 0x1e, 0xbe,
	0xeb, 0x4b, 0x23, 0xbe, 0xb2, 0xa5, 0x81, 0x3e, 0xa7, 0xef, 0xdd, 0x3d,
	0xc5, 0xe6, 0x99, 0xbd, 0x9f, 0xa9, 0x85, 0x3e, 0xdb, 0xbb, 0x14, 0x3d,
	0xe7, 0x6f, 0x90, 0xbe, 0xd0, 0x6f, 0x91, 0xbd, 0xcf, 0x82, 0xa6, 0x3e,
	0xcb, 0x00, 0x1c, 0x3e, 0x1f, 0xcc, 0x16, 0x3e, 0x5f, 0x50, 0x80, 0xbe,
	0x44, 0xdd, 0xce, 0x3d, 0x17, 0x55, 0xf4, 0x3d, 0x17, 0xcc, 0x8d, 0x3d,
	0x70, 0x25, 0x41, 0xbe, 0x10, 0x73, 0x5c, 0xbe, 0xab, 0x40, 0x83, 0x3e,
	0x57, 0x04, 0x15, 0xbe, 0x5e, 0x6a, 0x92, 0x3e, 0x8f, 0xc5, 0xa7, 0x3e,
	0xeb, 0x93, 0x0f, 0xbe, 0xed, 0xdb, 0x7e, 0xbe, 0x07, 0xdc, 0xbd, 0xbd,
	0x45, 0xcd, 0x9a, 0x3e, 0x4f, 0x18, 0x24, 0x3c, 0x1c, 0xf9, 0x51, 0x3d,
	0x20, 0x92, 0x46, 0xbe, 0xb4, 0x2a, 0xe6, 0xbd, 0x06, 0x71, 0x6a, 0xbe,
	0x29, 0x8f, 0x88, 0xbd, 0xe1, 0x59, 0x95, 0x3e, 0xc0, 0xae, 0x12, 0xbe,
	0xda, 0x6d, 0x29, 0xbc, 0x03, 0x45, 0x07, 0xbe, 0x03, 0x33, 0x86, 0x3e,
	0xf9, 0x4d, 0xdf, 0xbd, 0x5e, 0xf4, 0xc5, 0x3d, 0xbf, 0x61, 0x3d, 0xbe,
	0x02, 0x9a, 0x9d, 0x3e, 0x10, 0x73, 0x4e, 0x3e, 0xfc, 0xcf, 0x8e, 0x3d,
	0x5b, 0xb1, 0x1d, 0x3e, 0x5b, 0x40, 0x9f, 0xbe, 0x7d, 0xb2, 0xad, 0xbe,
	0x3c, 0x6d, 0x08, 0x3e, 0xd2, 0x11, 0xef, 0x3d, 0xda, 0xea, 0x8d, 0x3e,
	0x06, 0xb4, 0xac, 0x3d, 0xd8, 0x71, 0x50, 0xbd, 0x1d, 0x99, 0xa3, 0x3e,
	0xf3, 0x80, 0xe0, 0x3d, 0x7b, 0xce, 0xb3, 0xbd, 0xd6, 0xa7, 0xba, 0xbd,
	0xf1, 0xdf, 0xdc, 0x3d, 0x7d, 0x2c, 0x96, 0xbe, 0x9f, 0x28, 0x84, 0x3d,
	0x05, 0x38, 0x5b, 0x3e, 0x46, 0x44, 0xf4, 0xbc, 0x80, 0x83, 0xf8, 0xbd,
	0xab, 0x49, 0x87, 0xbe, 0x39, 0xc6, 0x8f, 0x3e, 0x8f, 0x8e, 0xa1, 0x3e,
	0x6f, 0x3c, 0x76, 0xbe, 0x8c, 0x98, 0xc0, 0x3c, 0xb6, 0xd5, 0xff, 0x3d,
	0x38, 0x7f, 0xc4, 0xbd, 0x88, 0x63, 0x56, 0x3e, 0x5e, 0x0b, 0xa4, 0xbe,
	0x75, 0xb1, 0x13, 0x3e, 0x7c, 0x7d, 0x51, 0xbe, 0x42, 0xd7, 0x33, 0xbc,
	0x7e, 0x66, 0x20, 0xbd, 0x4f, 0xad, 0x70, 0xbe, 0xf9, 0x29, 0x28, 0x3d,
	0x56, 0xd1, 0xb0, 0x3e, 0x0a, 0xeb, 0xeb, 0x3d, 0x0b, 0x85, 0x97, 0xbe,
	0xca, 0x17, 0x5f, 0xbe, 0xe5, 0xd4, 0xe9, 0xbd, 0x9a, 0x75, 0xcc, 0xbd,
	0x00, 0x11, 0x4b, 0x3d, 0x11, 0x07, 0x7e, 0xbe, 0x24, 0x92, 0xaf, 0x3c,
	0x22, 0x33, 0x8f, 0xbe, 0x0c, 0x3b, 0x92, 0xbe, 0xf1, 0x53, 0x75, 0x3e,
	0x81, 0x27, 0x04, 0xbe, 0x38, 0xe2, 0x85, 0x3e, 0x07, 0x0b, 0xaa, 0x3e,
	0xa5, 0xb6, 0x85, 0x3e, 0x4e, 0xcb, 0x2e, 0xbd, 0xb8, 0xce, 0xaf, 0x3e,
	0xd6, 0x47, 0x62, 0x3e, 0x3c, 0xaf, 0x1e, 0xbe, 0x4b, 0x51, 0x45, 0xbe,
	0x5f, 0x77, 0x39, 0xbe, 0x18, 0xd8, 0x85, 0xbe, 0xc6, 0xb7, 0x6f, 0x3e,
	0x06, 0x0c, 0xa3, 0x3e, 0x59, 0x3a, 0xb3, 0x3c, 0xa2, 0x48, 0x0c, 0x3e,
	0x0b, 0x38, 0xda, 0xbd, 0xe3, 0x0e, 0x13, 0x3d, 0x82, 0x22, 0x42, 0x3e,
	0x76, 0x85, 0xa7, 0xbe, 0xec, 0xa2, 0x4a, 0x3e, 0xd0, 0xc7, 0xf8, 0x3d,
	0x0e, 0x17, 0x16, 0xbe, 0xe0, 0x36, 0x38, 0xbd, 0x7e, 0x8b, 0x55, 0x3e,
	0x99, 0xaa, 0xcd, 0x3c, 0x59, 0x54, 0xa1, 0x3e, 0xc0, 0x5d, 0x01, 0x3d,
	0x6a, 0xf1, 0xf0, 0xbd, 0xd2, 0xde, 0xef, 0xbd, 0x07, 0x19, 0x27, 0x3e,
	0x35, 0x69, 0x18, 0x3e, 0xe9, 0x4e, 0xda, 0xbd, 0x5a, 0x1a, 0xc2, 0x3c,
	0x12, 0x5d, 0x90, 0xbc, 0x8d, 0x27, 0xf6, 0xbc, 0x6c, 0x35, 0x83, 0xbc,
	0xb4, 0xdf, 0x3b, 0xbd, 0x79, 0x10, 0xc2, 0x3c, 0xb3, 0xc6, 0x19, 0xbd,
	0xa0, 0xa5, 0xf9, 0x3c, 0xfd, 0x81, 0x45, 0x3d, 0xe4, 0x74, 0xb4, 0x3c,
	0x5d, 0xce, 0x75, 0x3c, 0x8e, 0xce, 0xe3, 0x3c, 0xee, 0x6d, 0xe2, 0xbc,
	0xb6, 0x3c, 0xfa, 0x3b, 0xe0, 0x0f, 0x3e, 0x3c, 0x20, 0x2f, 0x3e, 0x3d,
	0x9b, 0x8b, 0x06, 0x3d, 0x10, 0x00, 0x01, 0x00, 0x00, 0x00, 0x30, 0x92,
	0x95, 0xbe, 0x0f, 0x76, 0xc9, 0xbe, 0xe0, 0x3d, 0xb7, 0x3e, 0x74, 0x82,
	0x1b, 0x3e, 0x74, 0x73, 0xb4, 0x3e, 0x51, 0xb5, 0xad, 0xbd, 0xb1, 0x44,
	0xba, 0x3e, 0xad, 0xc3, 0xf2, 0x3c, 0xa6, 0xa2, 0x80, 0xbe, 0x5c, 0xae,
	0x18, 0xbf, 0x82, 0x28, 0xda, 0x3e, 0x2f, 0xc1, 0x12, 0x3f, 0x09, 0x76,
	0xc6, 0xbe, 0x2a, 0xfe, 0xf3, 0xbe, 0xfd, 0x95, 0x93, 0xbe, 0x53, 0xa4,
	0x10, 0xbf, 0x00, 0x00, 0xaa, 0xc2,
}
