package validate

// Fixed allow-lists for enumerated fields. Unknown values are violations,
// never passed through silently.

var deliverySpeeds = map[string]bool{
	"same_day":  true,
	"overnight": true,
	"expedited": true,
	"standard":  true,
}

var eventTypes = map[string]bool{
	"account_creation":   true,
	"account_login":      true,
	"email_change":       true,
	"password_reset":     true,
	"payout_change":      true,
	"purchase":           true,
	"recurring_purchase": true,
	"referral":           true,
	"survey":             true,
}

var reportTags = map[string]bool{
	"chargeback":      true,
	"not_fraud":       true,
	"spam_or_abuse":   true,
	"suspected_fraud": true,
}

var paymentProcessors = map[string]bool{
	"adyen":                            true,
	"affirm":                           true,
	"afterpay":                         true,
	"altapay":                          true,
	"amazon_payments":                  true,
	"american_express_payment_gateway": true,
	"apple_pay":                        true,
	"aps_payments":                     true,
	"authorizenet":                     true,
	"balanced":                         true,
	"beanstream":                       true,
	"bluepay":                          true,
	"bluesnap":                         true,
	"boacompra":                        true,
	"boku":                             true,
	"bpoint":                           true,
	"braintree":                        true,
	"cardknox":                         true,
	"cardpay":                          true,
	"cashfree":                         true,
	"ccavenue":                         true,
	"ccnow":                            true,
	"cetelem":                          true,
	"chase_paymentech":                 true,
	"checkout_com":                     true,
	"cielo":                            true,
	"collector":                        true,
	"commdoo":                          true,
	"compropago":                       true,
	"concept_payments":                 true,
	"conekta":                          true,
	"coregateway":                      true,
	"creditguard":                      true,
	"credorax":                         true,
	"cryptomus":                        true,
	"ct_payments":                      true,
	"cuentadigital":                    true,
	"curopayments":                     true,
	"cybersource":                      true,
	"dalenys":                          true,
	"dalpay":                           true,
	"datacap":                          true,
	"datacash":                         true,
	"dibs":                             true,
	"digital_river":                    true,
	"dlocal":                           true,
	"dotpay":                           true,
	"ebs":                              true,
	"ecomm365":                         true,
	"ecommpay":                         true,
	"elavon":                           true,
	"emerchantpay":                     true,
	"epay":                             true,
	"epayco":                           true,
	"eprocessing_network":              true,
	"epx":                              true,
	"eway":                             true,
	"exact":                            true,
	"first_atlantic_commerce":          true,
	"first_data":                       true,
	"fiserv":                           true,
	"g2a_pay":                          true,
	"global_payments":                  true,
	"gocardless":                       true,
	"google_pay":                       true,
	"heartland":                        true,
	"hipay":                            true,
	"ingenico":                         true,
	"interac":                          true,
	"internetsecure":                   true,
	"intuit_quickbooks_payments":       true,
	"iugu":                             true,
	"klarna":                           true,
	"komoju":                           true,
	"lemon_way":                        true,
	"mastercard_payment_gateway":       true,
	"mercadopago":                      true,
	"mercanet":                         true,
	"merchant_esolutions":              true,
	"mirjeh":                           true,
	"mollie":                           true,
	"moneris_solutions":                true,
	"neopay":                           true,
	"neosurf":                          true,
	"nmi":                              true,
	"oceanpayment":                     true,
	"oney":                             true,
	"onpay":                            true,
	"openbucks":                        true,
	"openpaymx":                        true,
	"optimal_payments":                 true,
	"orangepay":                        true,
	"other":                            true,
	"pacnet_services":                  true,
	"payconex":                         true,
	"payeezy":                          true,
	"payfast":                          true,
	"paygate":                          true,
	"paylike":                          true,
	"payment_express":                  true,
	"paymentwall":                      true,
	"payone":                           true,
	"paypal":                           true,
	"payplus":                          true,
	"paysafecard":                      true,
	"paysera":                          true,
	"paystation":                       true,
	"paytm":                            true,
	"paytrace":                         true,
	"paytrail":                         true,
	"payture":                          true,
	"payu":                             true,
	"payulatam":                        true,
	"payvision":                        true,
	"payway":                           true,
	"payza":                            true,
	"pinpayments":                      true,
	"placetopay":                       true,
	"posconnect":                       true,
	"princeton_payment_solutions":      true,
	"psigate":                          true,
	"pxp_financial":                    true,
	"qiwi":                             true,
	"quickpay":                         true,
	"raberil":                          true,
	"razorpay":                         true,
	"rede":                             true,
	"redpagos":                         true,
	"rewardspay":                       true,
	"safecharge":                       true,
	"sagepay":                          true,
	"securepay":                        true,
	"securetrading":                    true,
	"shopify_payments":                 true,
	"simplify_commerce":                true,
	"skrill":                           true,
	"smartcoin":                        true,
	"smartdebit":                       true,
	"solidtrust_pay":                   true,
	"sps_decidir":                      true,
	"stripe":                           true,
	"synapsefi":                        true,
	"systempay":                        true,
	"telerecargas":                     true,
	"towah":                            true,
	"transact_pro":                     true,
	"trustly":                          true,
	"trustpay":                         true,
	"tsys":                             true,
	"usa_epay":                         true,
	"vantiv":                           true,
	"verepay":                          true,
	"vericheck":                        true,
	"vindicia":                         true,
	"virtual_card_services":            true,
	"vme":                              true,
	"vpos":                             true,
	"windcave":                         true,
	"wirecard":                         true,
	"worldpay":                         true,
}
