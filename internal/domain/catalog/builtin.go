package catalog

// Builtin returns the built-in module catalog. Callers get a fresh value
// each time; the service layer validates and indexes it once at startup.
func Builtin() Catalog {
	return Catalog{Modules: []Module{
		riskAssessment(),
		investmentAnalysis(),
		clientManagement(),
		fraudDetection(),
		regulatoryCompliance(),
		customerSupport(),
		treasuryOperations(),
	}}
}

func riskAssessment() Module {
	return Module{
		ID:          "risk-assessment",
		Title:       "Risk Assessment Module",
		Description: "Comprehensive credit analysis, market risk evaluation, and compliance checking for informed financial decisions.",
		Icon:        "shield",
		ColorClass:  "module-card-risk",
		Agents: []Agent{
			{
				ID:          "credit-analyzer",
				Name:        "Credit Analyzer Agent",
				Description: "Analyzes credit reports, income verification, and employment history",
				Inputs: InputSpec{
					Text:        "Enter credit reports, income verification, debt-to-income ratios, employment history, collateral values",
					FileUploads: true,
				},
				Config: map[string]ConfigField{
					"scoringModel": {
						Type:    FieldDropdown,
						Label:   "Scoring Model",
						Options: []string{"FICO Score 8", "FICO Score 9", "VantageScore 3.0", "VantageScore 4.0"},
					},
					"riskTier": {
						Type:    FieldDropdown,
						Label:   "Risk Tier",
						Options: []string{"Low Risk", "Medium Risk", "High Risk", "Critical Risk"},
					},
					"threshold": {
						Type:    FieldSlider,
						Label:   "Decision Threshold",
						Min:     0.1,
						Max:     1.0,
						Default: 0.7,
					},
				},
				Outputs: []string{"Risk Score", "Risk Tier", "Recommendation"},
			},
			{
				ID:          "market-risk-bot",
				Name:        "Market Risk Bot",
				Description: "Evaluates market conditions and portfolio risk exposure",
				Inputs: InputSpec{
					Text:        "Enter market data feeds, portfolio positions, volatility indices, correlation matrices, stress scenarios",
					FileUploads: true,
				},
				Config: map[string]ConfigField{
					"varModel": {
						Type:    FieldDropdown,
						Label:   "VaR Model",
						Options: []string{"Parametric VaR", "Historical VaR", "Monte Carlo VaR"},
					},
					"riskLimits": {
						Type:    FieldNumeric,
						Label:   "Risk Limits ($M)",
						Default: 10,
					},
					"alertParameters": {
						Type:    FieldSlider,
						Label:   "Alert Sensitivity",
						Min:     0.1,
						Max:     1.0,
						Default: 0.5,
					},
				},
				Outputs: []string{"VaR Metrics", "Stress Test Results", "Market Risk Alerts"},
			},
			{
				ID:          "compliance-checker",
				Name:        "Compliance Checker Agent",
				Description: "Ensures regulatory compliance across all transactions",
				Inputs: InputSpec{
					Text:        "Enter transaction data, regulatory rules, customer profiles, jurisdiction requirements, audit trails",
					FileUploads: true,
				},
				Config: map[string]ConfigField{
					"complianceRules": {
						Type:    FieldDropdown,
						Label:   "Compliance Rules",
						Options: []string{"SOX", "GDPR", "Basel III", "MiFID II", "CCAR"},
					},
					"reportingRequirements": {
						Type:    FieldDropdown,
						Label:   "Reporting Requirements",
						Options: []string{"Daily", "Weekly", "Monthly", "Quarterly"},
					},
					"violationThreshold": {
						Type:    FieldNumeric,
						Label:   "Violation Threshold",
						Default: 5,
					},
				},
				Outputs: []string{"Compliance Report", "Flagged Violations"},
			},
		},
	}
}

func investmentAnalysis() Module {
	return Module{
		ID:          "investment-analysis",
		Title:       "Investment Analysis Module",
		Description: "Advanced market research, portfolio optimization, and intelligent investment recommendations powered by AI.",
		Icon:        "trending-up",
		ColorClass:  "module-card-investment",
		Agents: []Agent{
			{
				ID:          "market-research-bot",
				Name:        "Market Research Bot",
				Description: "Analyzes market trends and generates investment signals",
				Inputs: InputSpec{
					Text:        "Enter market data feeds, economic indicators, news sentiment, analyst reports, sector performance",
					FileUploads: true,
				},
				Config: map[string]ConfigField{
					"analysisFramework": {
						Type:    FieldDropdown,
						Label:   "Analysis Framework",
						Options: []string{"Technical Analysis", "Fundamental Analysis", "Quantitative Analysis", "Hybrid Analysis"},
					},
					"signalGeneration": {
						Type:    FieldToggle,
						Label:   "Signal Generation",
						Default: true,
					},
					"researchPriorities": {
						Type:    FieldDropdown,
						Label:   "Research Priorities",
						Options: []string{"Growth Stocks", "Value Stocks", "Dividend Stocks", "ESG Compliant"},
					},
				},
				Outputs: []string{"Market Trend Summary", "Investment Signals", "Supporting Charts"},
			},
			{
				ID:          "portfolio-optimizer",
				Name:        "Portfolio Optimizer Agent",
				Description: "Optimizes portfolio allocation based on risk tolerance",
				Inputs: InputSpec{
					Text:        "Enter current holdings, risk tolerance, return objectives, constraints, market forecasts",
					FileUploads: true,
				},
				Config: map[string]ConfigField{
					"optimizationAlgorithm": {
						Type:    FieldDropdown,
						Label:   "Optimization Algorithm",
						Options: []string{"Equal Weight", "Risk Parity", "Mean Variance", "Black-Litterman"},
					},
					"rebalancingTriggers": {
						Type:    FieldNumeric,
						Label:   "Rebalancing Trigger (%)",
						Default: 5,
					},
					"costConsiderations": {
						Type:    FieldToggle,
						Label:   "Include Transaction Costs",
						Default: true,
					},
				},
				Outputs: []string{"Optimized Allocation", "Performance Metrics", "Trade Suggestions"},
			},
			{
				ID:          "recommendation-engine",
				Name:        "Recommendation Engine Bot",
				Description: "Provides personalized investment recommendations",
				Inputs: InputSpec{
					Text:        "Enter client profiles, risk assessments, market conditions, product universe, historical performance",
					FileUploads: true,
				},
				Config: map[string]ConfigField{
					"suitabilityRules": {
						Type:    FieldDropdown,
						Label:   "Suitability Rules",
						Options: []string{"Conservative", "Moderate", "Aggressive", "Speculative"},
					},
					"recommendationLogic": {
						Type:    FieldDropdown,
						Label:   "Recommendation Logic",
						Options: []string{"Risk-Based", "Goal-Based", "Age-Based", "Income-Based"},
					},
					"disclosureRequirements": {
						Type:    FieldToggle,
						Label:   "Include Disclosures",
						Default: true,
					},
				},
				Outputs: []string{"Product Recommendations", "Justification Notes"},
			},
		},
	}
}

func clientManagement() Module {
	return Module{
		ID:          "client-management",
		Title:       "Client Management Module",
		Description: "Streamlined relationship management, upselling opportunities identification, and guided client onboarding processes.",
		Icon:        "users",
		ColorClass:  "module-card-client",
		Agents: []Agent{
			{
				ID:          "relationship-manager",
				Name:        "Relationship Manager Agent",
				Description: "Manages client relationships and engagement strategies",
				Inputs: InputSpec{
					Text:        "Enter client interactions, account history, life events, service requests, satisfaction scores",
					FileUploads: true,
				},
				Config: map[string]ConfigField{
					"engagementRules": {
						Type:    FieldDropdown,
						Label:   "Engagement Rules",
						Options: []string{"High Touch", "Medium Touch", "Low Touch", "Digital Only"},
					},
					"touchpointScheduling": {
						Type:    FieldText,
						Label:   "Touchpoint Schedule",
						Default: "Monthly",
					},
					"personalizationParameters": {
						Type:    FieldToggle,
						Label:   "Enable Personalization",
						Default: true,
					},
				},
				Outputs: []string{"Client Engagement Plan"},
			},
			{
				ID:          "upsell-identifier",
				Name:        "Upsell Identifier Bot",
				Description: "Identifies cross-selling and upselling opportunities",
				Inputs: InputSpec{
					Text:        "Enter account data, product usage, life stage indicators, peer comparisons, eligibility criteria",
					FileUploads: true,
				},
				Config: map[string]ConfigField{
					"opportunityScoring": {
						Type:    FieldSlider,
						Label:   "Opportunity Score Threshold",
						Min:     0.1,
						Max:     1.0,
						Default: 0.7,
					},
					"timingRules": {
						Type:    FieldDropdown,
						Label:   "Timing Rules",
						Options: []string{"Immediate", "Next Quarter", "Next Year", "Lifecycle Event"},
					},
					"offerParameters": {
						Type:    FieldDropdown,
						Label:   "Offer Type",
						Options: []string{"Product Upgrade", "New Product", "Service Enhancement", "Premium Tier"},
					},
				},
				Outputs: []string{"Upsell Opportunities List"},
			},
			{
				ID:          "onboarding-guide",
				Name:        "Onboarding Guide Agent",
				Description: "Guides clients through the onboarding process",
				Inputs: InputSpec{
					Text:        "Enter KYC documents, account applications, verification data, product selections, funding sources",
					FileUploads: true,
				},
				Config: map[string]ConfigField{
					"workflowSteps": {
						Type:    FieldText,
						Label:   "Workflow Steps",
						Default: "Standard",
					},
					"validationRules": {
						Type:    FieldDropdown,
						Label:   "Validation Rules",
						Options: []string{"Basic KYC", "Enhanced KYC", "Simplified KYC", "Full KYC"},
					},
					"approvalRequirements": {
						Type:    FieldDropdown,
						Label:   "Approval Level",
						Options: []string{"Auto-Approve", "Manager Approval", "Senior Manager", "Executive Approval"},
					},
				},
				Outputs: []string{"Onboarding Progress Tracker"},
			},
		},
	}
}

func fraudDetection() Module {
	return Module{
		ID:          "fraud-detection",
		Title:       "Fraud Detection Module",
		Description: "Real-time transaction monitoring, pattern recognition, and coordinated investigation management for fraud prevention.",
		Icon:        "alert-triangle",
		ColorClass:  "module-card-fraud",
		Agents: []Agent{
			{
				ID:          "transaction-monitor",
				Name:        "Transaction Monitor Bot",
				Description: "Monitors transactions in real-time for suspicious activity",
				Inputs: InputSpec{
					Text:        "Enter transaction streams, account profiles, device fingerprints, location data, behavioral patterns",
					FileUploads: true,
				},
				Config: map[string]ConfigField{
					"anomalyThresholds": {
						Type:    FieldSlider,
						Label:   "Anomaly Detection Threshold",
						Min:     0.1,
						Max:     1.0,
						Default: 0.8,
					},
					"ruleSets": {
						Type:    FieldText,
						Label:   "Rule Sets",
						Default: "Standard Fraud Rules",
					},
					"realTimeProcessing": {
						Type:    FieldNumeric,
						Label:   "Processing Limit (TPS)",
						Default: 1000,
					},
				},
				Outputs: []string{"Suspicious Transaction Alerts"},
			},
			{
				ID:          "pattern-recognition",
				Name:        "Pattern Recognition Agent",
				Description: "Identifies fraud patterns using machine learning",
				Inputs: InputSpec{
					Text:        "Enter historical fraud cases, transaction sequences, network analysis, feature engineering",
					FileUploads: true,
				},
				Config: map[string]ConfigField{
					"mlModelParameters": {
						Type:    FieldText,
						Label:   "ML Model Parameters",
						Default: "Random Forest",
					},
					"detectionSensitivity": {
						Type:    FieldSlider,
						Label:   "Detection Sensitivity",
						Min:     0.1,
						Max:     1.0,
						Default: 0.7,
					},
					"falsePositiveTolerance": {
						Type:    FieldSlider,
						Label:   "False Positive Tolerance",
						Min:     0.01,
						Max:     0.5,
						Default: 0.1,
					},
				},
				Outputs: []string{"Fraud Pattern Report"},
			},
			{
				ID:          "investigation-coordinator",
				Name:        "Investigation Coordinator Bot",
				Description: "Coordinates fraud investigation workflows",
				Inputs: InputSpec{
					Text:        "Enter alert queues, case priorities, investigator availability, evidence requirements, decision deadlines",
					FileUploads: true,
				},
				Config: map[string]ConfigField{
					"caseRouting": {
						Type:    FieldDropdown,
						Label:   "Case Routing",
						Options: []string{"Auto-Route", "Manual Route", "Skill-Based Route", "Load-Based Route"},
					},
					"escalationRules": {
						Type:    FieldDropdown,
						Label:   "Escalation Rules",
						Options: []string{"Time-Based", "Severity-Based", "Amount-Based", "Manual"},
					},
					"resolutionTracking": {
						Type:    FieldToggle,
						Label:   "Enable Resolution Tracking",
						Default: true,
					},
				},
				Outputs: []string{"Investigation Dashboard"},
			},
		},
	}
}

func regulatoryCompliance() Module {
	return Module{
		ID:          "regulatory-compliance",
		Title:       "Regulatory Compliance Module",
		Description: "Automated compliance monitoring, regulatory report generation, and comprehensive audit preparation tools.",
		Icon:        "file-check",
		ColorClass:  "module-card-compliance",
		Agents: []Agent{
			{
				ID:          "compliance-officer",
				Name:        "Compliance Officer Agent",
				Description: "Monitors regulatory compliance across all operations",
				Inputs: InputSpec{
					Text:        "Enter regulatory updates, internal policies, audit findings, control assessments, incident reports",
					FileUploads: true,
				},
				Config: map[string]ConfigField{
					"monitoringSchedules": {
						Type:    FieldText,
						Label:   "Monitoring Schedule",
						Default: "Daily",
					},
					"reportingFormats": {
						Type:    FieldDropdown,
						Label:   "Reporting Format",
						Options: []string{"PDF", "Excel", "XML", "JSON", "Custom"},
					},
					"remediationTracking": {
						Type:    FieldToggle,
						Label:   "Track Remediations",
						Default: true,
					},
				},
				Outputs: []string{"Compliance Monitoring Dashboard"},
			},
			{
				ID:          "report-generator",
				Name:        "Report Generator Bot",
				Description: "Generates regulatory reports and filings",
				Inputs: InputSpec{
					Text:        "Enter transaction data, regulatory templates, reporting periods, data validations, submission deadlines",
					FileUploads: true,
				},
				Config: map[string]ConfigField{
					"reportSpecifications": {
						Type:    FieldDropdown,
						Label:   "Report Type",
						Options: []string{"SEC Form 10-K", "SEC Form 10-Q", "CCAR", "Basel III", "GDPR Report"},
					},
					"aggregationRules": {
						Type:    FieldDropdown,
						Label:   "Data Aggregation",
						Options: []string{"Sum", "Average", "Count", "Max", "Min"},
					},
					"qualityChecks": {
						Type:    FieldToggle,
						Label:   "Enable Quality Checks",
						Default: true,
					},
				},
				Outputs: []string{"Regulatory Report File"},
			},
			{
				ID:          "audit-preparation",
				Name:        "Audit Preparation Agent",
				Description: "Prepares documentation and evidence for audits",
				Inputs: InputSpec{
					Text:        "Enter audit requests, documentation requirements, control evidence, testing samples, findings history",
					FileUploads: true,
				},
				Config: map[string]ConfigField{
					"preparationChecklists": {
						Type:    FieldDropdown,
						Label:   "Preparation Checklist",
						Options: []string{"SOX Audit", "External Audit", "Internal Audit", "Regulatory Exam"},
					},
					"responseTemplates": {
						Type:    FieldText,
						Label:   "Response Templates",
						Default: "Standard Templates",
					},
					"trackingSystems": {
						Type:    FieldToggle,
						Label:   "Enable Progress Tracking",
						Default: true,
					},
				},
				Outputs: []string{"Audit Readiness Summary"},
			},
		},
	}
}

func customerSupport() Module {
	return Module{
		ID:          "customer-support",
		Title:       "Customer Support Module",
		Description: "Intelligent account inquiries, transaction processing assistance, and personalized financial education services.",
		Icon:        "headphones",
		ColorClass:  "module-card-support",
		Agents: []Agent{
			{
				ID:          "account-inquiry",
				Name:        "Account Inquiry Bot",
				Description: "Handles customer account inquiries and questions",
				Inputs: InputSpec{
					Text:        "Enter customer queries, account data, transaction history, FAQ database, authentication data",
					FileUploads: true,
				},
				Config: map[string]ConfigField{
					"responseTemplates": {
						Type:    FieldDropdown,
						Label:   "Response Templates",
						Options: []string{"Formal", "Casual", "Technical", "Simple Language"},
					},
					"escalationTriggers": {
						Type:    FieldToggle,
						Label:   "Auto-Escalation",
						Default: true,
					},
					"securityProtocols": {
						Type:    FieldDropdown,
						Label:   "Security Level",
						Options: []string{"Basic Auth", "Multi-Factor", "Biometric", "Enhanced Verification"},
					},
				},
				Outputs: []string{"Customer Response Text"},
			},
			{
				ID:          "transaction-processor",
				Name:        "Transaction Processor Agent",
				Description: "Processes customer transaction requests",
				Inputs: InputSpec{
					Text:        "Enter transaction requests, account balances, limits/restrictions, approval requirements, confirmation needs",
					FileUploads: true,
				},
				Config: map[string]ConfigField{
					"processingRules": {
						Type:    FieldDropdown,
						Label:   "Processing Rules",
						Options: []string{"Same Day", "Next Day", "Standard", "Express"},
					},
					"validationChecks": {
						Type:    FieldToggle,
						Label:   "Enable Validation",
						Default: true,
					},
					"notificationTriggers": {
						Type:    FieldToggle,
						Label:   "Send Notifications",
						Default: true,
					},
				},
				Outputs: []string{"Transaction Confirmation"},
			},
			{
				ID:          "financial-educator",
				Name:        "Financial Educator Bot",
				Description: "Provides financial education and guidance",
				Inputs: InputSpec{
					Text:        "Enter customer profiles, financial goals, knowledge assessments, educational content, progress tracking",
					FileUploads: true,
				},
				Config: map[string]ConfigField{
					"learningPaths": {
						Type:    FieldDropdown,
						Label:   "Learning Path",
						Options: []string{"Beginner", "Intermediate", "Advanced", "Specialized"},
					},
					"contentRecommendations": {
						Type:    FieldToggle,
						Label:   "Personalized Content",
						Default: true,
					},
					"engagementMetrics": {
						Type:    FieldNumeric,
						Label:   "Engagement Goal (%)",
						Default: 80,
					},
				},
				Outputs: []string{"Personalized Education Plan"},
			},
		},
	}
}

func treasuryOperations() Module {
	return Module{
		ID:          "treasury-operations",
		Title:       "Treasury Operations Module",
		Description: "Cash position monitoring, liquidity forecasting, and financing oversight organized into specialized treasury teams.",
		Icon:        "landmark",
		ColorClass:  "module-card-treasury",
		SubTeams: []SubTeam{
			{
				ID:          "cash-position-monitoring",
				Name:        "Cash Position Monitoring Team",
				Mode:        TeamCoordinate,
				Description: "Provides real-time visibility of daily balances and reconciles actual vs. forecasted cash positions",
				Agents: []Agent{
					{
						ID:          "bank-data-consolidator",
						Name:        "Bank Data Consolidator",
						Description: "Aggregates balances from banking, custodial, and payment systems into one view",
						Inputs: InputSpec{
							Text:        "Enter bank statements, custodial account feeds, payment system exports, account currency mappings",
							FileUploads: true,
						},
						Config: map[string]ConfigField{
							"consolidationscope": {
								Type:    FieldDropdown,
								Label:   "Consolidation Scope",
								Options: []string{"All Accounts", "Operating Accounts", "Investment Accounts", "Payroll Accounts"},
							},
							"baseCurrency": {
								Type:    FieldDropdown,
								Label:   "Base Currency",
								Options: []string{"USD", "EUR", "GBP", "CHF"},
							},
							"staleDataTolerance": {
								Type:        FieldNumeric,
								Label:       "Stale Data Tolerance (hours)",
								Default:     24,
								Placeholder: "24",
							},
						},
						Outputs: []string{"Consolidated Cash Balances"},
					},
					{
						ID:          "balance-reconciler",
						Name:        "Balance Reconciler",
						Description: "Compares actual balances against forecasted positions and flags variances",
						Inputs: InputSpec{
							Text:        "Enter forecasted cash positions, actual balance snapshots, variance policies, escalation thresholds",
							FileUploads: true,
						},
						Config: map[string]ConfigField{
							"varianceThreshold": {
								Type:    FieldSlider,
								Label:   "Variance Threshold",
								Min:     0.01,
								Max:     0.25,
								Default: 0.05,
							},
							"reconciliationFrequency": {
								Type:    FieldDropdown,
								Label:   "Reconciliation Frequency",
								Options: []string{"Intraday", "Daily", "Weekly"},
							},
							"autoEscalation": {
								Type:    FieldToggle,
								Label:   "Auto-Escalate Variances",
								Default: true,
							},
						},
						Outputs: []string{"Variance Report", "Reconciliation Summary"},
					},
				},
			},
			{
				ID:          "cash-flow-oversight",
				Name:        "Cash Flow Oversight Team",
				Mode:        TeamCollaborate,
				Description: "Forecasts liquidity, oversees financing arrangements, and manages short-term investment of idle cash",
				Agents: []Agent{
					{
						ID:          "cash-flow-management",
						Name:        "Cash Flow Management Agent",
						Description: "Forecasts inflows and outflows and optimizes liquidity buffers",
						Inputs: InputSpec{
							Text:        "Enter transaction history, payroll schedules, supplier invoices, loan repayment calendars, FX exposures",
							FileUploads: true,
						},
						Config: map[string]ConfigField{
							"forecastHorizon": {
								Type:    FieldDropdown,
								Label:   "Forecast Horizon",
								Options: []string{"30 Days", "90 Days", "180 Days", "12 Months"},
							},
							"scenarioAnalysis": {
								Type:    FieldToggle,
								Label:   "Run Stress Scenarios",
								Default: true,
							},
							"minimumBuffer": {
								Type:        FieldNumeric,
								Label:       "Minimum Liquidity Buffer ($K)",
								Default:     50,
								Placeholder: "50",
							},
						},
						Outputs: []string{"Liquidity Forecast", "Buffer Analysis", "Risk Alerts"},
					},
					{
						ID:          "overseeing-financing",
						Name:        "Overseeing Financing Agent",
						Description: "Tracks credit lines, debt covenants, and financing costs",
						Inputs: InputSpec{
							Text:        "Enter credit facility terms, covenant schedules, interest rate benchmarks, drawdown history",
							FileUploads: true,
						},
						Config: map[string]ConfigField{
							"covenantMonitoring": {
								Type:    FieldToggle,
								Label:   "Monitor Covenants",
								Default: true,
							},
							"utilizationAlert": {
								Type:    FieldSlider,
								Label:   "Utilization Alert Level",
								Min:     0.5,
								Max:     1.0,
								Default: 0.8,
							},
						},
						Outputs: []string{"Financing Position Summary"},
					},
					{
						ID:          "overseeing-investment",
						Name:        "Overseeing Investment Agent",
						Description: "Places surplus liquidity into approved short-term instruments",
						Inputs: InputSpec{
							Text:        "Enter surplus cash projections, approved instrument list, maturity ladders, counterparty limits",
							FileUploads: true,
						},
						Config: map[string]ConfigField{
							"instrumentClass": {
								Type:    FieldDropdown,
								Label:   "Instrument Class",
								Options: []string{"Money Market Funds", "Term Deposits", "Commercial Paper", "Treasury Bills"},
							},
							"maxMaturity": {
								Type:        FieldNumeric,
								Label:       "Max Maturity (days)",
								Default:     90,
								Placeholder: "90",
							},
							"counterpartyCap": {
								Type:    FieldSlider,
								Label:   "Counterparty Concentration Cap",
								Min:     0.05,
								Max:     0.5,
								Default: 0.2,
							},
						},
						Outputs: []string{"Investment Schedule", "Maturity Ladder"},
					},
				},
			},
		},
	}
}
