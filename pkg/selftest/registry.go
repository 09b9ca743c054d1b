// registry.go holds the vector tables and the fixed, ordered list of
// self-tests. One vector per algorithm, taken from published sources:
// FIPS 197 appendix C.1 and NIST SP 800-38A for the AES tests, IEEE
// 1619-2007 for XTS, the McGrew/Viega GCM test vectors, RFC 8439 for
// ChaCha20-Poly1305, the FIPS 180 "abc" digests, RFC 4231 for HMAC, and
// the NIST CAVP drbgtestvectors archive for the two DRBG variants.
package selftest

import "github.com/certivault/fipskat/internal/constants"

// Shared AES material: the SP 800-38A key, IV and two-block message used
// by the CBC, CTR and ECB tests.
var (
	aesKey     = mustHex("2b7e151628aed2a6abf7158809cf4f3c")
	aesIV      = mustHex("000102030405060708090a0b0c0d0e0f")
	aesMessage = mustHex(
		"6bc1bee22e409f96e93d7e117393172a" +
			"ae2d8a571e03ac9c9eb76fac45af8e51")
)

var defaultTests = []Test{
	{
		// FIPS 197 appendix C.1. Tested apart from the modes because
		// the raw block cipher and the mode implementations need not
		// share a backend, and the library key-schedule entry point
		// is a third path again.
		Alg: constants.AlgAES,
		Run: testAES,
		Block: &BlockCipherVector{
			Key:        mustHex("000102030405060708090a0b0c0d0e0f"),
			Plaintext:  mustHex("00112233445566778899aabbccddeeff"),
			Ciphertext: mustHex("69c4e0d86a7b0430d8cdb78070b4c55a"),
		},
	},
	{
		// SP 800-38A F.2.1.
		Alg: constants.AlgCBCAES,
		Run: testCipher,
		Cipher: &CipherVector{
			Key:       aesKey,
			IV:        aesIV,
			Plaintext: aesMessage,
			Ciphertext: mustHex(
				"7649abac8119b246cee98e9b12e9197d" +
					"5086cb9b507219ee95db113a917678b2"),
		},
	},
	{
		// SP 800-38A F.5.1.
		Alg: constants.AlgCTRAES,
		Run: testCipher,
		Cipher: &CipherVector{
			Key:       aesKey,
			IV:        mustHex("f0f1f2f3f4f5f6f7f8f9fafbfcfdfeff"),
			Plaintext: aesMessage,
			Ciphertext: mustHex(
				"874d6191b620e3261bef6864990db6ce" +
					"9806f66b7970fdff8617187bb9fffdff"),
		},
	},
	{
		// SP 800-38A F.1.1. ECB takes no IV.
		Alg: constants.AlgECBAES,
		Run: testCipher,
		Cipher: &CipherVector{
			Key:       aesKey,
			Plaintext: aesMessage,
			Ciphertext: mustHex(
				"3ad77bb40d7a3660a89ecaf32466ef97" +
					"f5d3d58503b9699de785895a96fdbaaf"),
		},
	},
	{
		// IEEE 1619-2007 XTS-AES-128 vector 1: zero key, data unit 0.
		Alg: constants.AlgXTSAES,
		Run: testCipher,
		Cipher: &CipherVector{
			Key: mustHex(
				"00000000000000000000000000000000" +
					"00000000000000000000000000000000"),
			IV: mustHex("00000000000000000000000000000000"),
			Plaintext: mustHex(
				"00000000000000000000000000000000" +
					"00000000000000000000000000000000"),
			Ciphertext: mustHex(
				"917cf69ebd68b2ec9b9fe9a3eadda692" +
					"cd43d2f59598ed858c02c2652fbf922e"),
		},
	},
	{
		// McGrew/Viega GCM test case 4.
		Alg: constants.AlgGCMAES,
		Run: testAEAD,
		AEAD: &AEADVector{
			Key:   mustHex("feffe9928665731c6d6a8f9467308308"),
			IV:    mustHex("cafebabefacedbaddecaf888"),
			Assoc: mustHex("feedfacedeadbeeffeedfacedeadbeefabaddad2"),
			Plaintext: mustHex(
				"d9313225f88406e5a55909c5aff5269a" +
					"86a7a9531534f7da2e4c303d8a318a72" +
					"1c3c0c95956809532fcf0e2449a6b525" +
					"b16aedf5aa0de657ba637b39"),
			Ciphertext: mustHex(
				"42831ec2217774244b7221b784d0d49c" +
					"e3aa212f2c02a4e035c17e2329aca12e" +
					"21d514b25466931c7d8f6a5aac84aa05" +
					"1ba30b396a0aac973d58e091" +
					"5bc94fbc3221a5db94fae95ae7121a47"),
		},
	},
	{
		// RFC 8439 section 2.8.2.
		Alg: constants.AlgChaCha20Poly1305,
		Run: testAEAD,
		AEAD: &AEADVector{
			Key: mustHex(
				"808182838485868788898a8b8c8d8e8f" +
					"909192939495969798999a9b9c9d9e9f"),
			IV:    mustHex("070000004041424344454647"),
			Assoc: mustHex("50515253c0c1c2c3c4c5c6c7"),
			Plaintext: mustHex(
				"4c616469657320616e642047656e746c" +
					"656d656e206f662074686520636c6173" +
					"73206f66202739393a20496620492063" +
					"6f756c64206f6666657220796f75206f" +
					"6e6c79206f6e652074697020666f7220" +
					"746865206675747572652c2073756e73" +
					"637265656e20776f756c642062652069" +
					"742e"),
			Ciphertext: mustHex(
				"d31a8d34648e60db7b86afbc53ef7ec2" +
					"a4aded51296e08fea9e2b5a736ee62d6" +
					"3dbea45e8ca9671282fafb69da92728b" +
					"1a71de0a9e060b2905d6a5b67ecd3b36" +
					"92ddbd7f2d778b8c9803aee328091b58" +
					"fab324e4fad675945585808b4831d7bc" +
					"3ff4def08e4b7a9de576d26586cec64b" +
					"6116" +
					"1ae10b594f09e26a7e902ecbd0600691"),
		},
	},
	{
		Alg: constants.AlgSHA1,
		Run: testHash,
		Hash: &HashVector{
			Message: []byte("abc"),
			Digest:  mustHex("a9993e364706816aba3e25717850c26c9cd0d89d"),
		},
	},
	{
		// The one-shot library path; the dispatched sha256 engine is
		// covered by the hmac(sha256) test below.
		Alg: constants.AlgSHA256,
		Run: testSHA256Library,
		Hash: &HashVector{
			Message: []byte("abc"),
			Digest:  mustHex("ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"),
		},
	},
	{
		Alg: constants.AlgSHA3_256,
		Run: testHash,
		Hash: &HashVector{
			Message: []byte("abc"),
			Digest:  mustHex("3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532"),
		},
	},
	{
		// RFC 4231 test case 2. Also covers the dispatched sha256.
		Alg: constants.AlgHMACSHA256,
		Run: testHash,
		Hash: &HashVector{
			Key:     []byte("Jefe"),
			Message: []byte("what do ya want for nothing?"),
			Digest:  mustHex("5bdcc146bf60754e6a042426089575c75a003f089d2739839dec58b964ec3843"),
		},
	},
	{
		Alg: constants.AlgSHA512,
		Run: testHash,
		Hash: &HashVector{
			Message: []byte("abc"),
			Digest: mustHex(
				"ddaf35a193617abacc417349ae20413112e6fa4e89a97ea20a9eeee64b55d39a" +
					"2192992a274fc1a836ba3c23a3feebbd454d4423643ce80e2a9ac94fa54ca49f"),
		},
	},
	{
		// CAVP drbgtestvectors, HMAC_DRBG SHA-256 without prediction
		// resistance. Entropy carries entropy input and nonce
		// concatenated.
		Alg: constants.AlgDRBGNoPRHMAC256,
		Run: testDRBG,
		DRBG: &DRBGVector{
			Entropy: mustHex(
				"f97a3cfd91faa046b9e61b94" +
					"93d436c4931f604b22f10815" +
					"21b3419151e8ff0611f3a7d4" +
					"3595357d58120bd1e2dd8aed"),
			AdditionalA: mustHex(
				"517289afe444a0fe5ed1a41dbbb5eb17150079bdd31e29cf2ff30034d8268e3b"),
			AdditionalB: mustHex(
				"88028d29ef80b4e6f0fe12f91d7449fe75062682e89c571440c0c9b52c42a6e0"),
			Output: mustHex(
				"c6871cff0824fe55ea7689a52229886730450e5d362da5bf590dcf9acd67fed4" +
					"cb32107df5d03969a66b1f6494fdf5d63d5b4d0d34ea7399a07d0116126d0d51" +
					"8c7c55ba46e12f62efc8fe28a51c9d428e6d371d7397ab319fc73ded4722e5b4" +
					"f30004032a6128df5e7497ecf82ca7b0a50e867ef6728a4f509a8c859087039c"),
		},
	},
	{
		// CAVP drbgtestvectors, HMAC_DRBG SHA-256 with prediction
		// resistance: each generate call consumes fresh entropy.
		Alg: constants.AlgDRBGPRHMAC256,
		Run: testDRBG,
		DRBG: &DRBGVector{
			Entropy: mustHex(
				"c7ccbc677e21661e272b63dd" +
					"3a78dcdf666d3f24aecf3701" +
					"a90d898aa7dc8158aeb21015" +
					"7e18446d13eadf3785fe81fb"),
			Personalization: mustHex(
				"bc55ab3cf652b0113d7b90b824c9264e5a1e770d3d584adad181e9f8eb308f6f"),
			AdditionalA: mustHex(
				"18e817ffef39c7415c730303f63de85fc8abe4ab0fade8d686885528c169dd76"),
			AdditionalB: mustHex(
				"ac07fcbe870ed3ea1f7eb8e79dece8e7bcf3182577354aaa00992add0a005082"),
			EntropyPRA: mustHex(
				"7ba1915b3c04c41b1d192f1a1881603c6c6291b7e9f5cb96bb816accb5ae55b6"),
			EntropyPRB: mustHex(
				"992cc7787e3b8812efbed3d27d2aa586da8d58734a0ab22ebb4c7ee39ab681c1"),
			Output: mustHex(
				"956f95fc3bb7fe3ed04e1a146c347f7b1d0d635e489c69e64607d287f386523d" +
					"98275ed754e775504ffb4dfdac2f4b77cf9e8ecc16a224cd53de3ec5555dd526" +
					"3f89dfca8b4e1eb68878635ca263984e6f2559b15f2b23b04ba5185dc2157440" +
					"594cb41ecf9a36fd43e203b8599130892ac85a43237c7372da3fad2bba006bd1"),
		},
	},
	{
		// Deterministic consistency test; ML-KEM encapsulation is
		// randomized, so the seeds pin both sides.
		Alg: constants.AlgMLKEM1024,
		Run: testKEM,
		KEM: &KEMVector{
			KeySeed: mustHex(
				"0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef" +
					"fedcba9876543210fedcba9876543210fedcba9876543210fedcba9876543210"),
			EncapSeed: mustHex(
				"00112233445566778899aabbccddeeff00112233445566778899aabbccddeeff"),
		},
	},
}

// DefaultTests returns the registry in its fixed order. Callers get a
// fresh slice; the vectors themselves are shared and must be treated as
// read-only.
func DefaultTests() []Test {
	tests := make([]Test, len(defaultTests))
	copy(tests, defaultTests)
	return tests
}
