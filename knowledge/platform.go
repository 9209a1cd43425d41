package knowledge

// Topic tags used for audit records and fallback rule grouping.
const (
	TopicGettingStarted  = "getting-started"
	TopicIssuance        = "issuance"
	TopicSoulbound       = "soulbound"
	TopicVerification    = "verification"
	TopicStudent         = "student"
	TopicAdmin           = "admin"
	TopicSecurity        = "security"
	TopicPricing         = "pricing"
	TopicTroubleshooting = "troubleshooting"
	TopicIntegration     = "integration"
)

// Canonical question keys referenced by fallback rules.
const (
	QuestionIssueRequirements  = "what information is required to issue a credential"
	QuestionVerifyCredential   = "how does a university verify a credential"
	QuestionNonTransferable    = "why are credentials non-transferable"
	QuestionShareLinkExpiry    = "how long do share links stay active"
	QuestionSwitchNetwork      = "how do i switch to sepolia testnet"
	QuestionIPFSDowntime       = "what happens if ipfs node goes down"
	QuestionPricingPlans       = "what are the pricing plans"
	QuestionPrivateKeys        = "are private keys ever sent to the server"
	QuestionApproveRequests    = "how do i approve institution requests as admin"
	QuestionRevokeCredential   = "how do i revoke a credential"
	QuestionWalletNotConnected = "metamask not connecting"
)

// Platform returns the authored credential-platform Q&A set. Order matters:
// it is the tie-break order for similarity matching.
func Platform() []QA {
	return []QA{
		// Getting started
		{
			Topic:    TopicGettingStarted,
			Question: "how do i sign up as a student",
			Answer:   "Students sign up for free:\n1. Click \"Connect Wallet\" on the homepage\n2. MetaMask will prompt you to connect\n3. Fill in your full name and email\n4. Your wallet becomes your permanent academic identity\nNo payment required - unlimited access for students.",
		},
		{
			Topic:    TopicGettingStarted,
			Question: "how do i request institution authorization",
			Answer:   "To become an authorized issuer:\n1. Go to \"Institution -> Request Authorization\"\n2. Enter institution name, official website, and admin wallet address\n3. Submit the form\n4. Platform admin reviews (usually within 24h)\n5. Once approved, you can issue credentials immediately.",
		},
		{
			Topic:    TopicGettingStarted,
			Question: "what happens after i submit an authorization request",
			Answer:   "Your request enters the authorization queue with status **pending**. The admin reviews supporting documents. You'll receive an email when approved or rejected. Approved institutions gain the `MINTER` role in the smart contract.",
		},
		{
			Topic:    TopicGettingStarted,
			Question: "do i need to pay to become an authorized institution",
			Answer:   "Authorization itself is free. After approval you must subscribe to a paid plan (Basic/Pro/Enterprise) to issue credentials.",
		},
		{
			Topic:    TopicGettingStarted,
			Question: QuestionSwitchNetwork,
			Answer:   "The platform auto-switches your wallet:\n1. Click \"Connect Wallet\"\n2. If on another network, MetaMask shows \"Switch to Sepolia\"\n3. Approve the switch\nYou'll stay on Sepolia for all transactions.",
		},
		{
			Topic:    TopicGettingStarted,
			Question: "where can i get free sepolia eth",
			Answer:   "Use any public faucet:\n- https://sepoliafaucet.com\n- https://faucet.sepolia.dev\n- https://faucet.quicknode.com/sepolia\nPaste your address, solve captcha, receive 0.5-2 Sepolia ETH (free, no real value).",
		},
		{
			Topic:    TopicGettingStarted,
			Question: "what is this platform",
			Answer:   "This is a blockchain-based platform for secure issuance and instant verification of academic credentials. It uses soulbound tokens (SBTs) on Ethereum Sepolia testnet to ensure credentials are tamper-proof, non-transferable, and verifiable in seconds. Ideal for students applying abroad, institutions issuing degrees, and employers/universities verifying authenticity.",
		},

		// Credential issuance
		{
			Topic:    TopicIssuance,
			Question: "what file types can i upload for a credential",
			Answer:   "Supported formats: **PDF**, **PNG**, **JPG/JPEG**. Max size per file: 10 MB.",
		},
		{
			Topic:    TopicIssuance,
			Question: "can i issue multiple credentials in one transaction",
			Answer:   "Each credential is minted individually (one transaction per NFT). Bulk upload is planned for Enterprise tier in Phase 2.",
		},
		{
			Topic:    TopicIssuance,
			Question: QuestionIssueRequirements,
			Answer:   "Required fields:\n- Student wallet address\n- Full name\n- Degree title\n- Institution name\n- Graduation year\n- Document file (PDF/PNG/JPG)",
		},
		{
			Topic:    TopicIssuance,
			Question: "how long does it take to issue a credential",
			Answer:   "Average ~15 seconds (IPFS upload ~5-10s + blockchain confirmation ~5s).",
		},
		{
			Topic:    TopicIssuance,
			Question: "is there a limit on how many credentials i can issue",
			Answer:   "Depends on your plan:\n- Basic - 100/month\n- Pro - 500/month\n- Enterprise - unlimited",
		},
		{
			Topic:    TopicIssuance,
			Question: "what happens if the transaction fails",
			Answer:   "If MetaMask rejects or gas is insufficient:\n1. The document stays in IPFS (you keep the hash)\n2. No NFT is minted\n3. You can retry with higher gas or correct inputs.",
		},
		{
			Topic:    TopicIssuance,
			Question: "can i edit a credential after issuing",
			Answer:   "No. Blockchain is immutable. To correct, revoke the old token and issue a new one.",
		},
		{
			Topic:    TopicIssuance,
			Question: "how do i know the credential was minted successfully",
			Answer:   "After transaction confirmation you'll see:\n- Success toast\n- Token ID displayed\n- Entry in \"Issued Credentials\" table\n- Event logged in audit trail",
		},
		{
			Topic:    TopicIssuance,
			Question: QuestionRevokeCredential,
			Answer:   "As an authorized institution:\n1. Go to \"Issued Credentials\" dashboard\n2. Select the token ID\n3. Click \"Revoke\" and confirm transaction\n4. Status updates to \"Revoked\" on-chain; student is notified via email.",
		},

		// Soulbound tokens
		{
			Topic:    TopicSoulbound,
			Question: QuestionNonTransferable,
			Answer:   "Soulbound tokens use a custom `_update` override that reverts any transfer except minting (from address 0). This guarantees the degree stays with the original student forever.",
		},
		{
			Topic:    TopicSoulbound,
			Question: "can a soulbound token be burned",
			Answer:   "Only the contract owner (platform) can burn a token for cleanup. Issuers can only **revoke** (mark as invalid).",
		},
		{
			Topic:    TopicSoulbound,
			Question: "what is the difference between revoke and burn",
			Answer:   "- **Revoke** - marks token as invalid, keeps history\n- **Burn** - removes token completely (rare, admin only)",
		},
		{
			Topic:    TopicSoulbound,
			Question: "can a student transfer a credential to another wallet",
			Answer:   "No. Any attempt triggers \"Soulbound: Token is non-transferable\" error.",
		},
		{
			Topic:    TopicSoulbound,
			Question: "are soulbound tokens visible on opensea",
			Answer:   "Yes, but they show \"Non-Transferable\" and cannot be listed for sale.",
		},
		{
			Topic:    TopicSoulbound,
			Question: "what blockchain is used",
			Answer:   "Ethereum Sepolia testnet for development (gas-efficient, free ETH via faucets). Mainnet migration planned for production.",
		},

		// Verification
		{
			Topic:    TopicVerification,
			Question: QuestionVerifyCredential,
			Answer:   "1. Student sends QR code or share link\n2. University opens link -> Verification Portal\n3. System reads token ID -> queries contract\n4. Shows: degree, issue date, institution, revocation status, IPFS doc\n5. All in <2 seconds.",
		},
		{
			Topic:    TopicVerification,
			Question: "do verifiers need a wallet to check a credential",
			Answer:   "No. Verification portal is public; no login or wallet required.",
		},
		{
			Topic:    TopicVerification,
			Question: QuestionShareLinkExpiry,
			Answer:   "Default: 24 hours. You can set 1h, 6h, 24h, 7 days, or custom expiration.",
		},
		{
			Topic:    TopicVerification,
			Question: "can i see who accessed my share link",
			Answer:   "Yes. In Student Dashboard -> \"Access Logs\" you see:\n- Timestamp\n- IP (anonymized)\n- Institution name (if provided)\n- Access count",
		},
		{
			Topic:    TopicVerification,
			Question: "what happens when a share link expires",
			Answer:   "The link returns \"Expired\" and no data is shown. All access is blocked.",
		},
		{
			Topic:    TopicVerification,
			Question: "can i revoke a share link before it expires",
			Answer:   "Yes. Click \"Revoke Link\" next to any active share; it is invalidated instantly.",
		},
		{
			Topic:    TopicVerification,
			Question: "is the original document downloadable by verifiers",
			Answer:   "Yes, the IPFS link opens the PDF/PNG in the browser. The hash is shown for integrity check.",
		},
		{
			Topic:    TopicVerification,
			Question: "how do i generate a qr code for a credential",
			Answer:   "In Student Wallet -> select credential -> \"Share\" -> \"QR Code\". A printable PNG is generated instantly.",
		},
		{
			Topic:    TopicVerification,
			Question: "what if a credential is revoked during verification",
			Answer:   "The portal shows \"Revoked\" status with reason (if provided by issuer). Full history is displayed for transparency.",
		},

		// Student experience
		{
			Topic:    TopicStudent,
			Question: "how do i view my credentials in 3d",
			Answer:   "Open Student Wallet -> toggle \"3D Showcase\". Use mouse to rotate, flip, or switch between Grid/Stack/Focus views.",
		},
		{
			Topic:    TopicStudent,
			Question: "how do i share my credentials with an employer",
			Answer:   "1. Student Dashboard -> Select Credential -> \"Share\"\n2. Choose \"Link\" or \"QR Code\"\n3. Set expiration and optional password\n4. Send via email or print QR for interviews.",
		},
		{
			Topic:    TopicStudent,
			Question: "can i export my credentials",
			Answer:   "Yes: Download as PDF summary, JSON metadata, or EVM-compatible wallet export (for integration with other dApps).",
		},

		// Admin
		{
			Topic:    TopicAdmin,
			Question: QuestionApproveRequests,
			Answer:   "Admin Dashboard -> \"Pending Authorizations\" -> Review docs -> Approve/Reject -> Assign MINTER role via contract.",
		},
		{
			Topic:    TopicAdmin,
			Question: "what audit logs are available",
			Answer:   "Full on-chain events: Mint, Revoke, Share Access. Off-chain: IPFS uploads, User logins. Exportable as CSV.",
		},
		{
			Topic:    TopicAdmin,
			Question: "how do i manage subscription plans",
			Answer:   "Admin -> \"Billing\" -> View usage, upgrade/downgrade institutions, apply promo codes (e.g., TRINETRA for 50% off first month).",
		},

		// Security and IPFS
		{
			Topic:    TopicSecurity,
			Question: QuestionPrivateKeys,
			Answer:   "Never. All signing happens in MetaMask client-side. Server only receives transaction hashes and public data.",
		},
		{
			Topic:    TopicSecurity,
			Question: QuestionIPFSDowntime,
			Answer:   "IPFS is decentralized; files are pinned across multiple nodes (via Pinata gateway). If unavailable, fallback to archived copies on platform servers. Hash ensures integrity.",
		},
		{
			Topic:    TopicSecurity,
			Question: "how is data privacy ensured",
			Answer:   "GDPR-compliant: Student data encrypted, access logs anonymized, revocation respects right-to-be-forgotten (via burn). No KYC required.",
		},

		// Pricing
		{
			Topic:    TopicPricing,
			Question: "what is promo code trinetra",
			Answer:   "TRINETRA gives 50% off the first month for Pro/Enterprise plans. Apply during subscription checkout.",
		},
		{
			Topic:    TopicPricing,
			Question: QuestionPricingPlans,
			Answer:   "- **Basic**: $49/mo - 100 credentials, basic support\n- **Pro**: $199/mo - 500 credentials, priority support, API access\n- **Enterprise**: Custom - Unlimited, white-label, bulk minting\nStudents/Verifiers: Free forever.",
		},

		// Troubleshooting
		{
			Topic:    TopicTroubleshooting,
			Question: QuestionWalletNotConnected,
			Answer:   "1. Ensure MetaMask is unlocked\n2. Switch to Sepolia testnet\n3. Clear cache and refresh\n4. Check console for errors (F12).",
		},
		{
			Topic:    TopicTroubleshooting,
			Question: "transaction pending forever",
			Answer:   "Increase gas limit in MetaMask. If stuck, use Etherscan Sepolia to speed up or cancel.",
		},
		{
			Topic:    TopicTroubleshooting,
			Question: "ipfs upload failed",
			Answer:   "Check file size (<10MB), internet connection. Retry or use a different browser.",
		},

		// Integration and international
		{
			Topic:    TopicIntegration,
			Question: "is this suitable for applications abroad",
			Answer:   "Yes! Instant verification reduces fraud risks for international unis (e.g., US/UK). QR codes work offline; supports multi-language docs.",
		},
		{
			Topic:    TopicIntegration,
			Question: "can i integrate with other systems",
			Answer:   "API available for Enterprise: Query tokens, verify via webhook. Compatible with ERC-721 standards.",
		},
	}
}
