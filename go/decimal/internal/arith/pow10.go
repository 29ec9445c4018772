/*
Copyright 2024 The Vitess Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package arith

// MaxUnscaled128 is 10^38 - 1, the largest unscaled magnitude a 16-byte
// decimal may carry.
var MaxUnscaled128 = Int128{Hi: 0x4b3b4ca85a86c47a, Lo: 0x098a223fffffffff}

// FloorLog2Pow10 holds floor(log2(10^k)) for k in [0, 39]. It backs the
// leading-zero estimate lz(a*b) >= lz(a) - floor(log2(b)) - 1.
var FloorLog2Pow10 = [40]int{
	0, 3, 6, 9, 13, 16, 19, 23, 26, 29, 33, 36, 39, 43, 46, 49, 53, 56, 59,
	63, 66, 69, 73, 76, 79, 83, 86, 89, 93, 96, 99, 102, 106, 109, 112, 116,
	119, 122, 126, 129,
}

// Pow10Int64 holds 10^k for k in [0, 18]; the first ten entries also
// serve the 32-bit domain.
var Pow10Int64 = [19]int64{
	1,
	10,
	100,
	1000,
	10000,
	100000,
	1000000,
	10000000,
	100000000,
	1000000000,
	10000000000,
	100000000000,
	1000000000000,
	10000000000000,
	100000000000000,
	1000000000000000,
	10000000000000000,
	100000000000000000,
	1000000000000000000,
}

// Pow10Int128 holds 10^k for k in [0, 38].
var Pow10Int128 = [39]Int128{
	{Hi: 0x0000000000000000, Lo: 0x0000000000000001}, // 1e0
	{Hi: 0x0000000000000000, Lo: 0x000000000000000a}, // 1e1
	{Hi: 0x0000000000000000, Lo: 0x0000000000000064}, // 1e2
	{Hi: 0x0000000000000000, Lo: 0x00000000000003e8}, // 1e3
	{Hi: 0x0000000000000000, Lo: 0x0000000000002710}, // 1e4
	{Hi: 0x0000000000000000, Lo: 0x00000000000186a0}, // 1e5
	{Hi: 0x0000000000000000, Lo: 0x00000000000f4240}, // 1e6
	{Hi: 0x0000000000000000, Lo: 0x0000000000989680}, // 1e7
	{Hi: 0x0000000000000000, Lo: 0x0000000005f5e100}, // 1e8
	{Hi: 0x0000000000000000, Lo: 0x000000003b9aca00}, // 1e9
	{Hi: 0x0000000000000000, Lo: 0x00000002540be400}, // 1e10
	{Hi: 0x0000000000000000, Lo: 0x000000174876e800}, // 1e11
	{Hi: 0x0000000000000000, Lo: 0x000000e8d4a51000}, // 1e12
	{Hi: 0x0000000000000000, Lo: 0x000009184e72a000}, // 1e13
	{Hi: 0x0000000000000000, Lo: 0x00005af3107a4000}, // 1e14
	{Hi: 0x0000000000000000, Lo: 0x00038d7ea4c68000}, // 1e15
	{Hi: 0x0000000000000000, Lo: 0x002386f26fc10000}, // 1e16
	{Hi: 0x0000000000000000, Lo: 0x016345785d8a0000}, // 1e17
	{Hi: 0x0000000000000000, Lo: 0x0de0b6b3a7640000}, // 1e18
	{Hi: 0x0000000000000000, Lo: 0x8ac7230489e80000}, // 1e19
	{Hi: 0x0000000000000005, Lo: 0x6bc75e2d63100000}, // 1e20
	{Hi: 0x0000000000000036, Lo: 0x35c9adc5dea00000}, // 1e21
	{Hi: 0x000000000000021e, Lo: 0x19e0c9bab2400000}, // 1e22
	{Hi: 0x000000000000152d, Lo: 0x02c7e14af6800000}, // 1e23
	{Hi: 0x000000000000d3c2, Lo: 0x1bcecceda1000000}, // 1e24
	{Hi: 0x0000000000084595, Lo: 0x161401484a000000}, // 1e25
	{Hi: 0x000000000052b7d2, Lo: 0xdcc80cd2e4000000}, // 1e26
	{Hi: 0x00000000033b2e3c, Lo: 0x9fd0803ce8000000}, // 1e27
	{Hi: 0x00000000204fce5e, Lo: 0x3e25026110000000}, // 1e28
	{Hi: 0x00000001431e0fae, Lo: 0x6d7217caa0000000}, // 1e29
	{Hi: 0x0000000c9f2c9cd0, Lo: 0x4674edea40000000}, // 1e30
	{Hi: 0x0000007e37be2022, Lo: 0xc0914b2680000000}, // 1e31
	{Hi: 0x000004ee2d6d415b, Lo: 0x85acef8100000000}, // 1e32
	{Hi: 0x0000314dc6448d93, Lo: 0x38c15b0a00000000}, // 1e33
	{Hi: 0x0001ed09bead87c0, Lo: 0x378d8e6400000000}, // 1e34
	{Hi: 0x0013426172c74d82, Lo: 0x2b878fe800000000}, // 1e35
	{Hi: 0x00c097ce7bc90715, Lo: 0xb34b9f1000000000}, // 1e36
	{Hi: 0x0785ee10d5da46d9, Lo: 0x00f436a000000000}, // 1e37
	{Hi: 0x4b3b4ca85a86c47a, Lo: 0x098a224000000000}, // 1e38
}

// Pow10Int256 holds 10^k for k in [0, 76].
var Pow10Int256 = [77]Int256{
	{0x0000000000000001, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000}, // 1e0
	{0x000000000000000a, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000}, // 1e1
	{0x0000000000000064, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000}, // 1e2
	{0x00000000000003e8, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000}, // 1e3
	{0x0000000000002710, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000}, // 1e4
	{0x00000000000186a0, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000}, // 1e5
	{0x00000000000f4240, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000}, // 1e6
	{0x0000000000989680, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000}, // 1e7
	{0x0000000005f5e100, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000}, // 1e8
	{0x000000003b9aca00, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000}, // 1e9
	{0x00000002540be400, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000}, // 1e10
	{0x000000174876e800, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000}, // 1e11
	{0x000000e8d4a51000, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000}, // 1e12
	{0x000009184e72a000, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000}, // 1e13
	{0x00005af3107a4000, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000}, // 1e14
	{0x00038d7ea4c68000, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000}, // 1e15
	{0x002386f26fc10000, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000}, // 1e16
	{0x016345785d8a0000, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000}, // 1e17
	{0x0de0b6b3a7640000, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000}, // 1e18
	{0x8ac7230489e80000, 0x0000000000000000, 0x0000000000000000, 0x0000000000000000}, // 1e19
	{0x6bc75e2d63100000, 0x0000000000000005, 0x0000000000000000, 0x0000000000000000}, // 1e20
	{0x35c9adc5dea00000, 0x0000000000000036, 0x0000000000000000, 0x0000000000000000}, // 1e21
	{0x19e0c9bab2400000, 0x000000000000021e, 0x0000000000000000, 0x0000000000000000}, // 1e22
	{0x02c7e14af6800000, 0x000000000000152d, 0x0000000000000000, 0x0000000000000000}, // 1e23
	{0x1bcecceda1000000, 0x000000000000d3c2, 0x0000000000000000, 0x0000000000000000}, // 1e24
	{0x161401484a000000, 0x0000000000084595, 0x0000000000000000, 0x0000000000000000}, // 1e25
	{0xdcc80cd2e4000000, 0x000000000052b7d2, 0x0000000000000000, 0x0000000000000000}, // 1e26
	{0x9fd0803ce8000000, 0x00000000033b2e3c, 0x0000000000000000, 0x0000000000000000}, // 1e27
	{0x3e25026110000000, 0x00000000204fce5e, 0x0000000000000000, 0x0000000000000000}, // 1e28
	{0x6d7217caa0000000, 0x00000001431e0fae, 0x0000000000000000, 0x0000000000000000}, // 1e29
	{0x4674edea40000000, 0x0000000c9f2c9cd0, 0x0000000000000000, 0x0000000000000000}, // 1e30
	{0xc0914b2680000000, 0x0000007e37be2022, 0x0000000000000000, 0x0000000000000000}, // 1e31
	{0x85acef8100000000, 0x000004ee2d6d415b, 0x0000000000000000, 0x0000000000000000}, // 1e32
	{0x38c15b0a00000000, 0x0000314dc6448d93, 0x0000000000000000, 0x0000000000000000}, // 1e33
	{0x378d8e6400000000, 0x0001ed09bead87c0, 0x0000000000000000, 0x0000000000000000}, // 1e34
	{0x2b878fe800000000, 0x0013426172c74d82, 0x0000000000000000, 0x0000000000000000}, // 1e35
	{0xb34b9f1000000000, 0x00c097ce7bc90715, 0x0000000000000000, 0x0000000000000000}, // 1e36
	{0x00f436a000000000, 0x0785ee10d5da46d9, 0x0000000000000000, 0x0000000000000000}, // 1e37
	{0x098a224000000000, 0x4b3b4ca85a86c47a, 0x0000000000000000, 0x0000000000000000}, // 1e38
	{0x5f65568000000000, 0xf050fe938943acc4, 0x0000000000000002, 0x0000000000000000}, // 1e39
	{0xb9f5610000000000, 0x6329f1c35ca4bfab, 0x000000000000001d, 0x0000000000000000}, // 1e40
	{0x4395ca0000000000, 0xdfa371a19e6f7cb5, 0x0000000000000125, 0x0000000000000000}, // 1e41
	{0xa3d9e40000000000, 0xbc627050305adf14, 0x0000000000000b7a, 0x0000000000000000}, // 1e42
	{0x6682e80000000000, 0x5bd86321e38cb6ce, 0x00000000000072cb, 0x0000000000000000}, // 1e43
	{0x011d100000000000, 0x9673df52e37f2410, 0x0000000000047bf1, 0x0000000000000000}, // 1e44
	{0x0b22a00000000000, 0xe086b93ce2f768a0, 0x00000000002cd76f, 0x0000000000000000}, // 1e45
	{0x6f5a400000000000, 0xc5433c60ddaa1640, 0x0000000001c06a5e, 0x0000000000000000}, // 1e46
	{0x5986800000000000, 0xb4a05bc8a8a4de84, 0x00000000118427b3, 0x0000000000000000}, // 1e47
	{0x7f41000000000000, 0x0e4395d69670b12b, 0x00000000af298d05, 0x0000000000000000}, // 1e48
	{0xf88a000000000000, 0x8ea3da61e066ebb2, 0x00000006d79f8232, 0x0000000000000000}, // 1e49
	{0xb564000000000000, 0x926687d2c40534fd, 0x000000446c3b15f9, 0x0000000000000000}, // 1e50
	{0x15e8000000000000, 0xb8014e3ba83411e9, 0x000002ac3a4edbbf, 0x0000000000000000}, // 1e51
	{0xdb10000000000000, 0x300d0e549208b31a, 0x00001aba4714957d, 0x0000000000000000}, // 1e52
	{0x8ea0000000000000, 0xe0828f4db456ff0c, 0x00010b46c6cdd6e3, 0x0000000000000000}, // 1e53
	{0x9240000000000000, 0xc51999090b65f67d, 0x000a70c3c40a64e6, 0x0000000000000000}, // 1e54
	{0xb680000000000000, 0xb2fffa5a71fba0e7, 0x006867a5a867f103, 0x0000000000000000}, // 1e55
	{0x2100000000000000, 0xfdffc78873d4490d, 0x04140c78940f6a24, 0x0000000000000000}, // 1e56
	{0x4a00000000000000, 0xebfdcb54864ada83, 0x28c87cb5c89a2571, 0x0000000000000000}, // 1e57
	{0xe400000000000000, 0x37e9f14d3eec8920, 0x97d4df19d6057673, 0x0000000000000001}, // 1e58
	{0xe800000000000000, 0x2f236d04753d5b48, 0xee50b7025c36a080, 0x000000000000000f}, // 1e59
	{0x1000000000000000, 0xd762422c946590d9, 0x4f2726179a224501, 0x000000000000009f}, // 1e60
	{0xa000000000000000, 0x69d695bdcbf7a87a, 0x17877cec0556b212, 0x0000000000000639}, // 1e61
	{0x4000000000000000, 0x2261d969f7ac94ca, 0xeb4ae1383562f4b8, 0x0000000000003e3a}, // 1e62
	{0x8000000000000000, 0x57d27e23acbdcfe6, 0x30eccc3215dd8f31, 0x0000000000026e4d}, // 1e63
	{0x0000000000000000, 0x6e38ed64bf6a1f01, 0xe93ff9f4daa797ed, 0x0000000000184f03}, // 1e64
	{0x0000000000000000, 0x4e3945ef7a25360a, 0x1c7fc3908a8bef46, 0x0000000000f31627}, // 1e65
	{0x0000000000000000, 0x0e3cbb5ac5741c64, 0x1cfda3a5697758bf, 0x00000000097edd87}, // 1e66
	{0x0000000000000000, 0x8e5f518bb6891be8, 0x21e864761ea97776, 0x000000005ef4a747}, // 1e67
	{0x0000000000000000, 0x8fb92f75215b1710, 0x5313ec9d329eaaa1, 0x00000003b58e88c7}, // 1e68
	{0x0000000000000000, 0x9d3bda934d8ee6a0, 0x3ec73e23fa32aa4f, 0x00000025179157c9}, // 1e69
	{0x0000000000000000, 0x245689c107950240, 0x73c86d67c5faa71c, 0x00000172ebad6ddc}, // 1e70
	{0x0000000000000000, 0x6b61618a4bd21680, 0x85d4460dbbca8719, 0x00000e7d34c64a9c}, // 1e71
	{0x0000000000000000, 0x31cdcf66f634e100, 0x3a4abc8955e946fe, 0x000090e40fbeea1d}, // 1e72
	{0x0000000000000000, 0xf20a1a059e10ca00, 0x46eb5d5d5b1cc5ed, 0x0005a8e89d752524}, // 1e73
	{0x0000000000000000, 0x746504382ca7e400, 0xc531a5a58f1fbb4b, 0x003899162693736a}, // 1e74
	{0x0000000000000000, 0x8bf22a31be8ee800, 0xb3f07877973d50f2, 0x0235fadd81c2822b}, // 1e75
	{0x0000000000000000, 0x7775a5f171951000, 0x0764b4abe8652979, 0x161bcca7119915b5}, // 1e76
}

// ScaleQuotient128 holds MaxUnscaled128 / 10^k (integer truncation)
// for k in [0, 38]. Used to pre-check scale-up overflow without
// performing the wrapping multiplication.
var ScaleQuotient128 = [39]Int128{
	{Hi: 0x4b3b4ca85a86c47a, Lo: 0x098a223fffffffff}, // /1e0
	{Hi: 0x0785ee10d5da46d9, Lo: 0x00f4369fffffffff}, // /1e1
	{Hi: 0x00c097ce7bc90715, Lo: 0xb34b9f0fffffffff}, // /1e2
	{Hi: 0x0013426172c74d82, Lo: 0x2b878fe7ffffffff}, // /1e3
	{Hi: 0x0001ed09bead87c0, Lo: 0x378d8e63ffffffff}, // /1e4
	{Hi: 0x0000314dc6448d93, Lo: 0x38c15b09ffffffff}, // /1e5
	{Hi: 0x000004ee2d6d415b, Lo: 0x85acef80ffffffff}, // /1e6
	{Hi: 0x0000007e37be2022, Lo: 0xc0914b267fffffff}, // /1e7
	{Hi: 0x0000000c9f2c9cd0, Lo: 0x4674edea3fffffff}, // /1e8
	{Hi: 0x00000001431e0fae, Lo: 0x6d7217ca9fffffff}, // /1e9
	{Hi: 0x00000000204fce5e, Lo: 0x3e2502610fffffff}, // /1e10
	{Hi: 0x00000000033b2e3c, Lo: 0x9fd0803ce7ffffff}, // /1e11
	{Hi: 0x000000000052b7d2, Lo: 0xdcc80cd2e3ffffff}, // /1e12
	{Hi: 0x0000000000084595, Lo: 0x1614014849ffffff}, // /1e13
	{Hi: 0x000000000000d3c2, Lo: 0x1bcecceda0ffffff}, // /1e14
	{Hi: 0x000000000000152d, Lo: 0x02c7e14af67fffff}, // /1e15
	{Hi: 0x000000000000021e, Lo: 0x19e0c9bab23fffff}, // /1e16
	{Hi: 0x0000000000000036, Lo: 0x35c9adc5de9fffff}, // /1e17
	{Hi: 0x0000000000000005, Lo: 0x6bc75e2d630fffff}, // /1e18
	{Hi: 0x0000000000000000, Lo: 0x8ac7230489e7ffff}, // /1e19
	{Hi: 0x0000000000000000, Lo: 0x0de0b6b3a763ffff}, // /1e20
	{Hi: 0x0000000000000000, Lo: 0x016345785d89ffff}, // /1e21
	{Hi: 0x0000000000000000, Lo: 0x002386f26fc0ffff}, // /1e22
	{Hi: 0x0000000000000000, Lo: 0x00038d7ea4c67fff}, // /1e23
	{Hi: 0x0000000000000000, Lo: 0x00005af3107a3fff}, // /1e24
	{Hi: 0x0000000000000000, Lo: 0x000009184e729fff}, // /1e25
	{Hi: 0x0000000000000000, Lo: 0x000000e8d4a50fff}, // /1e26
	{Hi: 0x0000000000000000, Lo: 0x000000174876e7ff}, // /1e27
	{Hi: 0x0000000000000000, Lo: 0x00000002540be3ff}, // /1e28
	{Hi: 0x0000000000000000, Lo: 0x000000003b9ac9ff}, // /1e29
	{Hi: 0x0000000000000000, Lo: 0x0000000005f5e0ff}, // /1e30
	{Hi: 0x0000000000000000, Lo: 0x000000000098967f}, // /1e31
	{Hi: 0x0000000000000000, Lo: 0x00000000000f423f}, // /1e32
	{Hi: 0x0000000000000000, Lo: 0x000000000001869f}, // /1e33
	{Hi: 0x0000000000000000, Lo: 0x000000000000270f}, // /1e34
	{Hi: 0x0000000000000000, Lo: 0x00000000000003e7}, // /1e35
	{Hi: 0x0000000000000000, Lo: 0x0000000000000063}, // /1e36
	{Hi: 0x0000000000000000, Lo: 0x0000000000000009}, // /1e37
	{Hi: 0x0000000000000000, Lo: 0x0000000000000000}, // /1e38
}
